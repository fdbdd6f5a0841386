package services

import (
	"strings"
	"testing"
)

func TestAssistantReplyKeywords(t *testing.T) {
	cases := []struct {
		message string
		wantSub string
	}{
		{"hello there", "How can I assist"},
		{"I need FLIGHTS to Durban", "help with flights"},
		{"any good hotels?", "best hotels"},
		{"do you rent cars", "rental car"},
		{"what can I explore", "full of adventures"},
		{"tell me about a safari", "Kruger National Park"},
		{"thanks a lot", "very welcome"},
	}
	for _, tc := range cases {
		got := AssistantReply(tc.message)
		if !strings.Contains(got, tc.wantSub) {
			t.Errorf("AssistantReply(%q) = %q, want it to contain %q", tc.message, got, tc.wantSub)
		}
	}
}

func TestAssistantReplyDefault(t *testing.T) {
	got := AssistantReply("what is the meaning of life")
	if got != assistantDefault {
		t.Errorf("unmatched message should get the default pitch, got %q", got)
	}
}

func TestAssistantReplyMatchesWholeWordsOnly(t *testing.T) {
	// "hellos" contains "hello" as a substring but not as a word.
	got := AssistantReply("hellos")
	if got != assistantDefault {
		t.Errorf("substring must not trigger a keyword, got %q", got)
	}
}
