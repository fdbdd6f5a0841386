package services

import (
	"fmt"
	"regexp"
	"strings"
)

// GenerateItinerary asks the model for a sample 3-day itinerary built
// around a search's result titles. The completion is free text in a
// small markdown subset; RenderItinerary turns it into blocks.
func (c *GeminiClient) GenerateItinerary(query string, results *SearchResults) (string, error) {
	prompt := buildItineraryPrompt(query, results)
	return c.generateContent(prompt, nil)
}

func buildItineraryPrompt(query string, results *SearchResults) string {
	context := fmt.Sprintf(`
Flights: %s.
Hotels: %s.
Cars: %s.
Experiences: %s.
`,
		joinTitlesFlights(results.Flights),
		joinTitlesHotels(results.Hotels),
		joinTitlesCars(results.Cars),
		joinTitlesExplore(results.ExploreItems),
	)

	return fmt.Sprintf(`You are a helpful travel assistant. A user has searched for "%s".
Based on their search, we found these options: %s.
Please create a concise and exciting 3-day sample itinerary.
1. Write a short, engaging summary paragraph for the trip.
2. Then, recommend ONE specific flight, ONE hotel, ONE car, and ONE experience from the lists provided that would create a great trip.
3. Format your response in simple markdown. Use a '###' heading for the summary and another for the recommendations. Use '*' for the list of recommendations. For example:

### Your Awesome Trip!
(Your summary here...)

### Our Recommendations
*   **Flight:** [Flight Title]
*   **Hotel:** [Hotel Title]
*   **Car:** [Car Title]
*   **Experience:** [Experience Title]

Be friendly and inspiring!`, query, context)
}

func joinTitlesFlights(items []Flight) string {
	titles := make([]string, 0, len(items))
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	return orNone(titles)
}

func joinTitlesHotels(items []Hotel) string {
	titles := make([]string, 0, len(items))
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	return orNone(titles)
}

func joinTitlesCars(items []Car) string {
	titles := make([]string, 0, len(items))
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	return orNone(titles)
}

func joinTitlesExplore(items []ExploreItem) string {
	titles := make([]string, 0, len(items))
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	return orNone(titles)
}

func orNone(titles []string) string {
	if len(titles) == 0 {
		return "None"
	}
	return strings.Join(titles, ", ")
}

// ─── Rendering ────────────────────────────────────────────────────────────────

// ItineraryBlock is one rendered line of the markdown subset the model
// is asked to produce.
type ItineraryBlock struct {
	// Type is "heading", "item" or "paragraph".
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`
	Text  string `json:"text"`
}

var boldLabelRe = regexp.MustCompile(`\*\*(.*?)\*\*`)

// RenderItinerary parses the completion line by line. It is lenient:
// the model is trusted to follow the requested format, and anything it
// gets wrong degrades to a plain paragraph instead of erroring.
func RenderItinerary(text string) []ItineraryBlock {
	var blocks []ItineraryBlock
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, ItineraryBlock{
				Type: "heading",
				Text: line[len("### "):],
			})
		case strings.HasPrefix(line, "*   **"):
			label := ""
			if m := boldLabelRe.FindStringSubmatch(line); m != nil {
				label = m[1]
			}
			rest := ""
			if idx := strings.Index(line, ":**"); idx >= 0 {
				rest = strings.TrimSpace(line[idx+len(":**"):])
			}
			blocks = append(blocks, ItineraryBlock{
				Type:  "item",
				Label: label,
				Text:  rest,
			})
		case strings.TrimSpace(line) == "":
			// skip blank lines
		default:
			blocks = append(blocks, ItineraryBlock{
				Type: "paragraph",
				Text: line,
			})
		}
	}
	return blocks
}
