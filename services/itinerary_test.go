package services

import (
	"strings"
	"testing"
)

func TestItineraryPromptListsTitles(t *testing.T) {
	results := &SearchResults{
		Flights: []Flight{{ItemCore: ItemCore{Title: "Direct Flight to Tokyo"}}},
		Hotels:  []Hotel{{ItemCore: ItemCore{Title: "Park Hyatt Tokyo"}}},
	}
	results.Normalize()

	prompt := buildItineraryPrompt("tokyo trip", results)

	if !strings.Contains(prompt, `"tokyo trip"`) {
		t.Error("prompt must quote the original query")
	}
	if !strings.Contains(prompt, "Direct Flight to Tokyo") {
		t.Error("prompt must list flight titles")
	}
	if !strings.Contains(prompt, "Park Hyatt Tokyo") {
		t.Error("prompt must list hotel titles")
	}
}

func TestItineraryPromptEmptyCategoriesSayNone(t *testing.T) {
	results := &SearchResults{}
	results.Normalize()

	prompt := buildItineraryPrompt("q", results)
	for _, want := range []string{"Flights: None.", "Hotels: None.", "Cars: None.", "Experiences: None."} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestRenderItinerary(t *testing.T) {
	text := "### Your Awesome Trip!\n" +
		"A whirlwind three days in Tokyo.\n" +
		"\n" +
		"### Our Recommendations\n" +
		"*   **Flight:** Direct Flight to Tokyo\n" +
		"*   **Hotel:** Park Hyatt Tokyo\n"

	blocks := RenderItinerary(text)
	if len(blocks) != 5 {
		t.Fatalf("expected 5 blocks, got %d: %+v", len(blocks), blocks)
	}

	if blocks[0].Type != "heading" || blocks[0].Text != "Your Awesome Trip!" {
		t.Errorf("block 0 wrong: %+v", blocks[0])
	}
	if blocks[1].Type != "paragraph" || blocks[1].Text != "A whirlwind three days in Tokyo." {
		t.Errorf("block 1 wrong: %+v", blocks[1])
	}
	if blocks[2].Type != "heading" || blocks[2].Text != "Our Recommendations" {
		t.Errorf("block 2 wrong: %+v", blocks[2])
	}
	if blocks[3].Type != "item" || blocks[3].Label != "Flight:" || blocks[3].Text != "Direct Flight to Tokyo" {
		t.Errorf("block 3 wrong: %+v", blocks[3])
	}
	if blocks[4].Type != "item" || blocks[4].Label != "Hotel:" || blocks[4].Text != "Park Hyatt Tokyo" {
		t.Errorf("block 4 wrong: %+v", blocks[4])
	}
}

func TestRenderItineraryDegradesToParagraph(t *testing.T) {
	blocks := RenderItinerary("- not the requested bullet style")
	if len(blocks) != 1 || blocks[0].Type != "paragraph" {
		t.Fatalf("unrecognized lines should become paragraphs, got %+v", blocks)
	}
}
