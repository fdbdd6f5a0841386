package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// GeminiClient talks to the Gemini generateContent REST API. Search
// uses structured output (a response schema the model must satisfy);
// itinerary generation uses plain text completions.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

var geminiClient *GeminiClient

func InitGemini() {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	geminiClient = &GeminiClient{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com",
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}

	if geminiClient.apiKey != "" {
		log.Println("✅ AI (Gemini) initialized with model:", model)
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set — AI search and itineraries will fail")
	}
}

func GetGeminiClient() *GeminiClient {
	return geminiClient
}

// ─── Wire types ───────────────────────────────────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Schema is the subset of the structured-output schema language the
// search gateway needs.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// ─── Requests ─────────────────────────────────────────────────────────────────

// generateContent sends one prompt and returns the first candidate's
// text. All search and itinerary traffic funnels through here.
func (c *GeminiClient) generateContent(prompt string, cfg *generationConfig) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini API key not configured")
	}

	reqBody := geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: cfg,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("AI model is rate limited, please retry in a few seconds")
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, string(body))
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(body, &gemResp); err != nil {
		return "", fmt.Errorf("failed to parse AI response: %v", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 ||
		gemResp.Candidates[0].Content.Parts[0].Text == "" {
		return "", fmt.Errorf("empty response from AI")
	}

	return gemResp.Candidates[0].Content.Parts[0].Text, nil
}

// SearchTrips asks the model to synthesize travel listings for a
// free-text query. The response is schema-constrained JSON; categories
// the model leaves out come back as empty lists, never nil. On any
// transport or parse failure the whole result set is discarded.
func (c *GeminiClient) SearchTrips(query string) (*SearchResults, error) {
	prompt := fmt.Sprintf(`Based on the user query "%s", find relevant travel options. `+
		`Generate a list of flights, hotels, rental cars, and experiences. `+
		`Ensure all prices are in South African Rand (ZAR). Provide diverse and realistic results. `+
		`Generate a unique ID for each item. For images, provide valid and relevant URLs from `+
		`free stock photo sites like Unsplash or Pexels. Limit each category to a maximum of 4 items. `+
		`If no relevant items are found for a category, return an empty array for it.`, query)

	text, err := c.generateContent(prompt, &generationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   searchResponseSchema(),
	})
	if err != nil {
		return nil, err
	}

	var results SearchResults
	if err := json.Unmarshal([]byte(text), &results); err != nil {
		return nil, fmt.Errorf("failed to parse search results: %v", err)
	}

	results.Normalize()
	return &results, nil
}

// searchResponseSchema declares the structured-output contract: four
// item arrays sharing a core shape plus category-specific optional
// fields.
func searchResponseSchema() *Schema {
	reviewSchema := &Schema{
		Type: "OBJECT",
		Properties: map[string]*Schema{
			"name": {Type: "STRING"},
			"date": {Type: "STRING"},
			"text": {Type: "STRING"},
		},
	}

	itemSchema := &Schema{
		Type: "OBJECT",
		Properties: map[string]*Schema{
			"id":       {Type: "STRING", Description: "A unique identifier for the item, e.g., 'flight-gen-1'."},
			"title":    {Type: "STRING"},
			"location": {Type: "STRING"},
			"priceZAR": {Type: "NUMBER"},
			"images":   {Type: "ARRAY", Items: &Schema{Type: "STRING"}, Description: "Array of 1-3 valid, high-quality image URLs from a free source like Unsplash or Pexels."},
			"rating":   {Type: "NUMBER", Description: "A rating between 3.5 and 5.0."},
			"description": {
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"short": {Type: "STRING"},
					"long":  {Type: "STRING"},
				},
				Required: []string{"short", "long"},
			},
			"reviews": {Type: "ARRAY", Items: reviewSchema, Description: "Generate 2-3 realistic reviews for this item."},
			// Category-specific fields
			"airline":   {Type: "STRING", Description: "For flights only."},
			"duration":  {Type: "STRING", Description: "For flights only."},
			"amenities": {Type: "ARRAY", Items: &Schema{Type: "STRING"}, Description: "For hotels only."},
			"type":      {Type: "STRING", Description: "For cars only (e.g., 'SUV', 'Sedan')."},
			"seats":     {Type: "INTEGER", Description: "For cars only."},
			"features":  {Type: "ARRAY", Items: &Schema{Type: "STRING"}, Description: "For cars only."},
			"tags":      {Type: "ARRAY", Items: &Schema{Type: "STRING"}, Description: "For explore items only."},
		},
		Required: []string{"id", "title", "location", "priceZAR", "images", "rating", "description", "reviews"},
	}

	return &Schema{
		Type: "OBJECT",
		Properties: map[string]*Schema{
			"flights":      {Type: "ARRAY", Items: itemSchema, Description: "List of flights. Maximum 4 items."},
			"hotels":       {Type: "ARRAY", Items: itemSchema, Description: "List of hotels. Maximum 4 items."},
			"cars":         {Type: "ARRAY", Items: itemSchema, Description: "List of rental cars. Maximum 4 items."},
			"exploreItems": {Type: "ARRAY", Items: itemSchema, Description: "List of experiences or activities. Maximum 4 items."},
		},
		Required: []string{"flights", "hotels", "cars", "exploreItems"},
	}
}
