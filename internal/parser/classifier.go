package parser

import (
	"regexp"
	"strings"

	"github.com/groupwatch/groupwatch/internal/model"
)

// botOriginMarker prefixes lines the relay bot emits about itself.
// Those lines never describe a group event and yield no event at all.
const botOriginMarker = "[BOT]"

// boldPattern matches Discord-style bold markup.
var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// StripBold removes Discord bold markup, keeping the wrapped text.
// The operation is idempotent.
func StripBold(s string) string {
	return boldPattern.ReplaceAllString(s, "$1")
}

// Rule pairs a cheap substring guard with the capture regex that
// extracts the rule's fields, plus the action type the rule assigns.
// Rules are evaluated in registration order and the first matching
// guard wins, so more specific phrasings must be registered ahead of
// the general ones that would otherwise shadow them.
type Rule struct {
	Guard   func(line string) bool
	Capture *regexp.Regexp
	Apply   func(ev *model.ParsedEvent, groups []string)
	Name    string
	Action  model.ActionType
	System  bool
}

// Classifier classifies normalized log lines against an ordered rule
// table. It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a classifier loaded with the default rule table.
func NewClassifier() *Classifier {
	return &Classifier{rules: defaultRules()}
}

// Rules exposes the rule table, in evaluation order.
func (c *Classifier) Rules() []Rule {
	return c.rules
}

// Classify turns one raw log line into a ParsedEvent. It returns nil
// when the line produces no event at all: empty after normalization,
// or emitted by the bot itself. A line that matches no rule, or whose
// matched rule fails field capture, comes back with ActionUnknown and
// no details; classification never fails, it only degrades.
func (c *Classifier) Classify(line string) *model.ParsedEvent {
	text := strings.TrimSpace(StripBold(strings.TrimSpace(line)))
	if text == "" || strings.HasPrefix(text, botOriginMarker) {
		return nil
	}

	ev := &model.ParsedEvent{
		ActionType: model.ActionUnknown,
		RawText:    text,
	}

	for _, rule := range c.rules {
		if !rule.Guard(text) {
			continue
		}
		if groups := rule.Capture.FindStringSubmatch(text); groups != nil {
			ev.ActionType = rule.Action
			ev.IsSystemAction = rule.System
			if rule.Apply != nil {
				rule.Apply(ev, groups)
			}
		}
		// A matching guard consumes the line even when its capture
		// regex fails: malformed lines degrade to unknown instead of
		// falling through to a less specific rule.
		break
	}

	return ev
}
