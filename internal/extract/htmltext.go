package extract

import (
	"regexp"
	"strings"
)

// The substitution pipeline is order-sensitive: structural tags become
// newlines before the remaining tags are stripped, entities decode
// after stripping, and whitespace collapses last.
var (
	htmlLineBreak  = regexp.MustCompile(`(?i)<br\s*/?>`)
	htmlParaClose  = regexp.MustCompile(`(?i)</(?:p|div)\s*>`)
	htmlBlockClose = regexp.MustCompile(`(?i)</(?:li|tr|h[1-6]|ul|ol|table|blockquote)\s*>`)
	htmlAnyTag     = regexp.MustCompile(`<[^>]*>`)
	spaceRun       = regexp.MustCompile(`[ \t]+`)
	newlineRun     = regexp.MustCompile(`\n{3,}`)
)

var entityDecoder = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&amp;", "&",
)

// FormatHTMLContent converts rich-text HTML to plain text while
// preserving paragraph structure: paragraph and div closes produce a
// blank line, other block closes and <br> a single newline. Unmatched
// or malformed tags are simply stripped; the function never fails.
func FormatHTMLContent(html string) string {
	s := htmlLineBreak.ReplaceAllString(html, "\n")
	s = htmlParaClose.ReplaceAllString(s, "\n\n")
	s = htmlBlockClose.ReplaceAllString(s, "\n")
	s = htmlAnyTag.ReplaceAllString(s, "")
	s = entityDecoder.Replace(s)
	s = spaceRun.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = strings.Join(lines, "\n")
	s = newlineRun.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}
