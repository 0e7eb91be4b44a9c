package extract

import (
	"regexp"
	"strings"

	"github.com/groupwatch/groupwatch/internal/model"
)

var (
	// orderBlockStart marks the beginning of one claim block inside a
	// submission; the block runs until the next start or end of text.
	orderBlockStart = regexp.MustCompile(`(?i)In-?game name\s*:`)

	// orderBlockFields captures the four labeled fields of one block.
	orderBlockFields = regexp.MustCompile(
		`(?is)In-?game name\s*:\s*(.*?)\s*Account name\s*:\s*(.*?)\s*Completed orders?\s*:\s*(.*?)\s*Proof\s*:\s*(.*)`)

	// proofAnchor finds the href of an anchor tag following a "Proof"
	// label in the raw HTML of a submission.
	proofAnchor = regexp.MustCompile(`(?is)Proof\s*:?[^<]*<a\s[^>]*href="([^"]+)"`)

	bareURL   = regexp.MustCompile(`https?://[^\s<>"]+`)
	orderCode = regexp.MustCompile(`\d+`)
)

// ExtractUserOrders scans a submission text for repeated claim blocks
// and returns one OrderClaim per block, cross-referenced against the
// order catalog. rawHTML, when non-empty, is the unstripped HTML the
// text came from and is preferred for locating proof links.
//
// Validation is all-or-nothing per submission: a single block with a
// short name, an unknown order code, or no locatable proof URL
// invalidates the whole batch and yields an empty result.
func ExtractUserOrders(text, rawHTML string) []model.OrderClaim {
	starts := orderBlockStart.FindAllStringIndex(text, -1)
	if len(starts) == 0 {
		return nil
	}

	var anchors []string
	if rawHTML != "" {
		for _, m := range proofAnchor.FindAllStringSubmatch(rawHTML, -1) {
			anchors = append(anchors, m[1])
		}
	}

	claims := make([]model.OrderClaim, 0, len(starts))
	for i, start := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		block := text[start[0]:end]

		m := orderBlockFields.FindStringSubmatch(block)
		if m == nil {
			return nil
		}

		nickname := normalizeSpace(m[1])
		account := normalizeSpace(m[2])
		completed := normalizeSpace(m[3])
		proof := strings.TrimSpace(m[4])

		if len(nickname) < 2 || len(account) < 2 {
			return nil
		}

		code := orderCode.FindString(completed)
		info, ok := model.LookupOrder(code)
		if !ok {
			return nil
		}

		proofURL := ""
		if i < len(anchors) {
			proofURL = anchors[i]
		} else if u := bareURL.FindString(proof); u != "" {
			proofURL = u
		}
		if proofURL == "" {
			return nil
		}

		claims = append(claims, model.OrderClaim{
			Nickname:         nickname,
			AccountName:      account,
			CompletedOrders:  completed,
			OrderDescription: info.Description,
			Payout:           info.Payout,
			Proof:            proof,
			ProofURL:         proofURL,
		})
	}

	return claims
}

// normalizeSpace collapses all interior whitespace runs to single
// spaces and trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
