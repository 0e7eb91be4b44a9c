// Package parser implements the event-line parsing and classification
// engine: a chat-noise filter, a player-reference extractor, and a
// first-match rule table that turns loosely formatted log lines into
// typed events. Every function in this package is pure and total over
// arbitrary input strings; malformed input degrades, it never errors.
package parser

import (
	"regexp"
	"strings"

	"github.com/groupwatch/groupwatch/internal/model"
)

// playerRefPattern matches "Nickname (account_name)" at the start of a
// fragment. Nicknames never contain parentheses in the source logs.
var playerRefPattern = regexp.MustCompile(`^\s*([^()]+?)\s*\(\s*([^()]+?)\s*\)`)

// nestedRefPattern is the looser anywhere-in-string variant used by the
// chat-noise filter to spot an event line hiding inside a chat-shaped one.
var nestedRefPattern = regexp.MustCompile(`[^()\s][^()]*\(\s*[^()]+?\s*\)`)

// ExtractPlayer pulls a (nickname, account name) pair out of a text
// fragment. It returns nil when the fragment carries no parenthesized
// account group.
func ExtractPlayer(fragment string) *model.PlayerReference {
	m := playerRefPattern.FindStringSubmatch(fragment)
	if m == nil {
		return nil
	}
	return &model.PlayerReference{
		Nickname:    strings.TrimSpace(m[1]),
		AccountName: strings.TrimSpace(m[2]),
	}
}

// ExtractNameOnly returns a nickname-only reference for grammars that
// never supply an account name, such as raw invitee names. Trailing
// punctuation is stripped. Returns nil for blank fragments.
func ExtractNameOnly(fragment string) *model.PlayerReference {
	name := strings.TrimSpace(fragment)
	name = strings.TrimRight(name, ".,!?;:")
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return &model.PlayerReference{Nickname: name}
}

// extractAnyRef prefers a full nickname/account pair and falls back to
// a bare name.
func extractAnyRef(fragment string) *model.PlayerReference {
	if ref := ExtractPlayer(fragment); ref != nil {
		return ref
	}
	return ExtractNameOnly(fragment)
}
