package ai

import (
	"regexp"
	"strings"
)

// A token is roughly four characters of English text. Used to turn a
// request's token budget into a character cap on the reply.
const charsPerToken = 4

var thinkBlock = regexp.MustCompile(`(?s)<think>.*?</think>`)

// isGarbageResponse flags replies that must never reach the memory
// stream: error pages, canned refusals, and fragments too short to
// carry a thought.
func isGarbageResponse(s string) bool {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "<html"):
		return true
	case strings.Contains(l, "not allowed"), strings.Contains(l, "as an ai language model"):
		return true
	case len(strings.TrimSpace(s)) < 5:
		return true
	}
	return false
}

// snippet shortens a raw response body for error messages.
func snippet(b []byte) string {
	if len(b) > 200 {
		return string(b[:200]) + "..."
	}
	return string(b)
}

// cleanReply strips reasoning blocks and wrapping quotes, then trims
// the reply to the request's token budget. Zero budget means no cap.
func cleanReply(reply string, maxTokens int) string {
	reply = strings.TrimSpace(thinkBlock.ReplaceAllString(reply, ""))

	if len(reply) >= 2 {
		quotes := []struct{ open, close string }{
			{`"`, `"`}, {`'`, `'`}, {"“", "”"}, {"‘", "’"},
		}
		for _, q := range quotes {
			if strings.HasPrefix(reply, q.open) && strings.HasSuffix(reply, q.close) {
				reply = strings.TrimSuffix(strings.TrimPrefix(reply, q.open), q.close)
				reply = strings.TrimSpace(reply)
				break
			}
		}
	}

	if maxTokens > 0 {
		reply = trimToBudget(reply, maxTokens*charsPerToken)
	}
	return reply
}

// trimToBudget cuts text at the last sentence end before maxChars,
// falling back to a hard cut when no late-enough boundary exists.
func trimToBudget(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	cut := string(runes[:maxChars])
	if idx := strings.LastIndexAny(cut, ".!?"); idx > len(cut)/2 {
		return strings.TrimSpace(cut[:idx+1])
	}
	return strings.TrimSpace(cut) + "..."
}
