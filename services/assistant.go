package services

import (
	"regexp"
	"strings"
)

// Canned concierge replies, keyed by keyword. The chat widget is a
// stub on purpose: it never calls the model.
var assistantResponses = map[string]string{
	"hello":   "Hello! How can I assist with your travel plans?",
	"flights": "I can definitely help with flights. Where would you like to fly from and to?",
	"hotels":  "Looking for a place to stay? I can find the best hotels. What city are you interested in?",
	"cars":    "Need a rental car? Let me know the pickup location and dates, and I'll find some great options.",
	"explore": "The world is full of adventures! Are you looking for something specific, like a beach vacation, a historic tour, or a nature hike?",
	"safari":  "A safari is an amazing choice! We have incredible packages for Kruger National Park and the Serengeti. Both offer a chance to see the 'Big Five'. The Serengeti is known for the Great Migration, while Kruger offers fantastic self-drive opportunities.",
	"thanks":  "You're very welcome! Is there anything else I can help you with today?",
}

const assistantDefault = "I can help you with that! I can search for destinations, flights, hotels, cars, and experiences. What are you looking for today?"

var wordRe = regexp.MustCompile(`\b\w+\b`)

// AssistantReply scans the message for known keywords and returns the
// first match's canned answer, or the default pitch.
func AssistantReply(message string) string {
	words := wordRe.FindAllString(strings.ToLower(message), -1)
	for _, w := range words {
		if resp, ok := assistantResponses[w]; ok {
			return resp
		}
	}
	return assistantDefault
}
