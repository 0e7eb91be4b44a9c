package parser

import (
	"regexp"
	"strings"
)

// chatLinePattern matches the "<handle>: <message>" display shape that
// ordinary player chat shares with nothing else in the log.
var chatLinePattern = regexp.MustCompile(`^([^:]+):\s+(.+)$`)

// eventKeywords are phrases that only occur in system event lines. A
// chat-shaped line containing any of them is kept for classification
// instead of being discarded.
var eventKeywords = []string{
	"joined",
	"left",
	"deposited",
	"withdrew",
	"promoted",
	"demoted",
	"kicked",
	"rewarded",
	"invited",
	"Denied",
	"Accepted",
	"application",
	"group bank",
	"for reason",
}

// IsChatNoise reports whether a normalized line is ordinary player chat
// to be discarded before classification. This is a heuristic, not a
// grammar: a chat line that slips through is caught later when no
// classification rule matches and the event degrades to unknown.
func IsChatNoise(line string) bool {
	m := chatLinePattern.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	for _, kw := range eventKeywords {
		if strings.Contains(line, kw) {
			return false
		}
	}
	// The message itself may carry a nested "handle (account)" shape,
	// which marks an event line relayed through a chat prefix.
	if nestedRefPattern.MatchString(m[2]) {
		return false
	}
	return true
}
