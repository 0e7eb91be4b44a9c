package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/groupwatch/groupwatch/internal/model"
)

// RenderEventsTable renders event log records as an aligned table.
func RenderEventsTable(records []model.EventRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		actor := displayRef(r.ActorNickname, r.ActorAccount)
		if r.IsSystemAction {
			actor = "system"
		}
		rows = append(rows, []string{
			r.Timestamp.Format("2006-01-02 15:04:05"),
			string(r.ActionType),
			actor,
			displayRef(r.TargetNickname, r.TargetAccount),
			renderDetails(r.Details),
		})
	}
	return renderTable([]string{"TIME", "ACTION", "ACTOR", "TARGET", "DETAILS"}, rows)
}

// RenderPlayersTable renders the player roster as an aligned table.
func RenderPlayersTable(players []model.Player) string {
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		member := "no"
		if p.IsInGroup {
			member = "yes"
		}
		rows = append(rows, []string{
			p.AccountName,
			p.Nickname,
			member,
			p.LastSeen.Format("2006-01-02 15:04:05"),
		})
	}
	return renderTable([]string{"ACCOUNT", "NICKNAME", "MEMBER", "LAST SEEN"}, rows)
}

// RenderOrderClaims renders extracted order claims for review.
func RenderOrderClaims(claims []model.OrderClaim) string {
	rows := make([][]string, 0, len(claims))
	for _, c := range claims {
		rows = append(rows, []string{
			c.Nickname,
			c.AccountName,
			c.OrderDescription,
			c.Payout,
			c.ProofURL,
		})
	}
	return renderTable([]string{"NICKNAME", "ACCOUNT", "ORDER", "PAYOUT", "PROOF"}, rows)
}

func displayRef(nickname, account string) string {
	switch {
	case nickname != "" && account != "":
		return fmt.Sprintf("%s (%s)", nickname, account)
	case nickname != "":
		return nickname
	default:
		return account
	}
}

func renderDetails(details map[string]string) string {
	if len(details) == 0 {
		return ""
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+details[k])
	}
	return strings.Join(parts, " ")
}

func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(TableHeaderStyle.Render(pad(h, widths[i])))
		b.WriteString("  ")
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(TableCellStyle.Render(pad(cell, widths[i])))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
