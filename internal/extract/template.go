// Package extract implements the structured-text extractors that run
// on captured text blocks rather than the chat pipeline: application
// templates, order submissions, and the HTML-to-text normalizer that
// pre-cleans HTML-sourced submissions. Like the line parser, every
// extractor is total: malformed input yields empty results, never errors.
package extract

import (
	"regexp"
	"strings"

	"github.com/groupwatch/groupwatch/internal/model"
)

// The labeled-field patterns tolerate the colon/newline noise that
// copy-pasting the application form tends to introduce: an optional
// colon, an optional line break, then another optional colon before
// the value.
var (
	templateNickname = labeledField(`In-game nickname`, `[^\n]+`)
	templateAccount  = labeledField(`Account name`, `[^\n]+`)
	templateSerial   = labeledField(`Your MTA serial`, `[A-F0-9]+`)
)

// labeledField builds a pattern matching "<label>: <value>" with the
// label matched case-insensitively and the value pattern left exact,
// so the serial token keeps its uppercase-hex requirement.
func labeledField(label, value string) *regexp.Regexp {
	return regexp.MustCompile(`(?i:` + label + `)[ \t]*:?[ \t]*\n?[ \t]*:?[ \t]*(` + value + `)`)
}

// ExtractTemplateInfo pulls nickname, account name, and MTA serial out
// of a single application template block. Each field is independently
// optional; a missing field never blocks extraction of the others.
func ExtractTemplateInfo(text string) model.TemplateFields {
	var fields model.TemplateFields
	if m := templateNickname.FindStringSubmatch(text); m != nil {
		fields.Nickname = strings.TrimSpace(m[1])
	}
	if m := templateAccount.FindStringSubmatch(text); m != nil {
		fields.AccountName = strings.TrimSpace(m[1])
	}
	if m := templateSerial.FindStringSubmatch(text); m != nil {
		fields.MTASerial = strings.TrimSpace(m[1])
	}
	return fields
}
