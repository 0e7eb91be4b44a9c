package parser

import (
	"regexp"
	"strings"

	"github.com/groupwatch/groupwatch/internal/model"
)

// stripThousands removes thousands separators from an extracted number.
// Values stay strings; numeric coercion is the consumer's job.
func stripThousands(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

func contains(substr string) func(string) bool {
	return func(line string) bool { return strings.Contains(line, substr) }
}

var warnPercentHint = regexp.MustCompile(`\(\+[\d,]+%\)`)

// defaultRules builds the classification rule table. Ordering is a
// tie-break contract: several guards can pass on the same line, and
// the first registered one wins. Keep specific phrasings ("has warned"
// with a percentage) ahead of the general ones ("warned") that would
// shadow them.
func defaultRules() []Rule {
	return []Rule{
		{
			Name:    "system_bank_deposit",
			Action:  model.ActionBankDeposit,
			System:  true,
			Guard:   func(line string) bool { return strings.HasPrefix(line, "$") && strings.Contains(line, " deposited to ") },
			Capture: regexp.MustCompile(`^\$([\d,]+) deposited to (.+?) bank(?: \((.+)\))?$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Details = model.MoneyDetails{Amount: stripThousands(g[1]), Reason: g[3]}
			},
		},
		{
			Name:   "top_score_deposit",
			Action: model.ActionTopScoreDeposit,
			Guard: func(line string) bool {
				return strings.Contains(line, " deposited ") && strings.Contains(line, "top score")
			},
			Capture: regexp.MustCompile(`^(.+?) deposited ([\d,]+) top score points?$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Details = model.TopScoreDetails{Amount: stripThousands(g[2])}
			},
		},
		{
			Name:    "bank_deposit",
			Action:  model.ActionBankDeposit,
			Guard:   contains(" deposited $"),
			Capture: regexp.MustCompile(`^(.+?) deposited \$([\d,]+) (?:in|to) the group bank$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Details = model.MoneyDetails{Amount: stripThousands(g[2])}
			},
		},
		{
			Name:    "bank_withdraw",
			Action:  model.ActionBankWithdraw,
			Guard:   contains(" withdrew $"),
			Capture: regexp.MustCompile(`^(.+?) withdrew \$([\d,]+) from the group bank(?: \((.+)\))?$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Details = model.MoneyDetails{Amount: stripThousands(g[2]), Reason: g[3]}
			},
		},
		{
			Name:    "promotion",
			Action:  model.ActionPromotion,
			Guard:   contains(" is promoting "),
			Capture: regexp.MustCompile(`^(.+?) is promoting (.+?) from (.+?) to (.+?)(?: \((.+)\))?$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Target = ExtractPlayer(g[2])
				ev.Details = model.RankChangeDetails{FromRank: g[3], ToRank: g[4], Reason: g[5]}
			},
		},
		{
			Name:    "demotion",
			Action:  model.ActionDemotion,
			Guard:   contains(" is demoting "),
			Capture: regexp.MustCompile(`^(.+?) is demoting (.+?) from (.+?) to (.+?)(?: \((.+)\))?$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Target = ExtractPlayer(g[2])
				ev.Details = model.RankChangeDetails{FromRank: g[3], ToRank: g[4], Reason: g[5]}
			},
		},
		{
			Name:    "promotion_short",
			Action:  model.ActionPromotion,
			Guard:   contains(" has promoted "),
			Capture: regexp.MustCompile(`^(.+?) has promoted (.+?) to (.+?)(?: \((.+)\))?$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Target = ExtractPlayer(g[2])
				ev.Details = model.RankChangeDetails{ToRank: g[3], Reason: g[4]}
			},
		},
		{
			Name:    "demotion_short",
			Action:  model.ActionDemotion,
			Guard:   contains(" has demoted "),
			Capture: regexp.MustCompile(`^(.+?) has demoted (.+?) to (.+?)(?: \((.+)\))?$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Target = ExtractPlayer(g[2])
				ev.Details = model.RankChangeDetails{ToRank: g[3], Reason: g[4]}
			},
		},
		{
			Name:   "warn_percent",
			Action: model.ActionWarn,
			Guard: func(line string) bool {
				return strings.Contains(line, " has warned ") && warnPercentHint.MatchString(line)
			},
			Capture: regexp.MustCompile(`^(.+?) has warned (.+?) \(\+([\d,]+)%\)(?: for reason (.+))?$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Target = ExtractPlayer(g[2])
				ev.Details = model.WarnDetails{WarningIncrease: stripThousands(g[3]), Reason: g[4]}
			},
		},
		{
			Name:    "warn",
			Action:  model.ActionWarn,
			Guard:   contains(" warned "),
			Capture: regexp.MustCompile(`^(.+?) warned (.+?)(?: for reason (.+))?$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Target = ExtractPlayer(g[2])
				ev.Details = model.WarnDetails{Reason: g[3]}
			},
		},
		{
			Name:    "mass_reward",
			Action:  model.ActionMassReward,
			Guard:   contains(" rewarded all "),
			Capture: regexp.MustCompile(`^(.+?) rewarded all (?:group )?members with \$([\d,]+)(?: \((.+)\))?$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Details = model.MoneyDetails{Amount: stripThousands(g[2]), Reason: g[3]}
			},
		},
		{
			Name:    "money_reward",
			Action:  model.ActionMoneyReward,
			Guard:   contains(" has rewarded "),
			Capture: regexp.MustCompile(`^(.+?) has rewarded (.+?) with \$([\d,]+)(?: for reason (.+))?$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Target = ExtractPlayer(g[2])
				ev.Details = model.MoneyDetails{Amount: stripThousands(g[3]), Reason: g[4]}
			},
		},
		{
			Name:    "kick",
			Action:  model.ActionKick,
			Guard:   contains(" has kicked "),
			Capture: regexp.MustCompile(`^(.+?) has kicked (.+?) from the group(?: for reason (.+))?$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Target = ExtractPlayer(g[2])
				ev.Details = model.KickDetails{Reason: g[3]}
			},
		},
		{
			Name:    "kick_system",
			Action:  model.ActionKick,
			System:  true,
			Guard:   contains(" was kicked "),
			Capture: regexp.MustCompile(`^(.+?) was kicked from the group(?: \((.+)\))?$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Target = extractAnyRef(g[1])
				ev.Details = model.KickDetails{Reason: g[2]}
			},
		},
		{
			Name:    "join",
			Action:  model.ActionJoin,
			Guard:   contains(" has joined the group"),
			Capture: regexp.MustCompile(`^(.+?) has joined the group$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = extractAnyRef(g[1])
			},
		},
		{
			Name:    "leave",
			Action:  model.ActionLeave,
			Guard:   contains(" has left the group"),
			Capture: regexp.MustCompile(`^(.+?) has left the group$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = extractAnyRef(g[1])
			},
		},
		{
			Name:    "invite",
			Action:  model.ActionInvite,
			Guard:   contains(" has invited "),
			Capture: regexp.MustCompile(`^(.+?) has invited (.+?)(?: to the group)?$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				// Invitee names never carry an account in this grammar.
				ev.Target = ExtractNameOnly(g[2])
			},
		},
		{
			Name:   "application_accept",
			Action: model.ActionApplicationAccept,
			Guard: func(line string) bool {
				return strings.Contains(line, "Accepted") && strings.Contains(line, "application")
			},
			Capture: regexp.MustCompile(`^(.+?) has Accepted the application of (.+)$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Target = ExtractNameOnly(g[2])
			},
		},
		{
			Name:   "application_deny",
			Action: model.ActionApplicationDeny,
			Guard: func(line string) bool {
				return strings.Contains(line, "Denied") && strings.Contains(line, "application")
			},
			Capture: regexp.MustCompile(`^(.+?) has Denied the application of (.+)$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Target = ExtractNameOnly(g[2])
			},
		},
		{
			Name:    "application_delete",
			Action:  model.ActionApplicationDelete,
			Guard:   contains(" has deleted the application"),
			Capture: regexp.MustCompile(`^(.+?) has deleted the application of (.+)$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Target = ExtractNameOnly(g[2])
			},
		},
		{
			Name:    "application_submit",
			Action:  model.ActionApplicationSubmit,
			Guard:   contains(" has submitted an application"),
			Capture: regexp.MustCompile(`^(.+?) has submitted an application$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = extractAnyRef(g[1])
			},
		},
		{
			Name:    "create_group",
			Action:  model.ActionCreateGroup,
			Guard:   contains(" has created the group"),
			Capture: regexp.MustCompile(`^(.+?) has created the group (.+)$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				ev.Details = model.GroupNameDetails{GroupName: g[2]}
			},
		},
		{
			Name:    "update_group_info",
			Action:  model.ActionUpdateGroupInfo,
			Guard:   contains(" has updated the group info"),
			Capture: regexp.MustCompile(`^(.+?) has updated the group info$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
			},
		},
		{
			Name:    "group_promotion",
			Action:  model.ActionGroupPromotion,
			System:  true,
			Guard:   contains("group is now level "),
			Capture: regexp.MustCompile(`^The group is now level ([\d,]+)$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Details = model.GroupLevelDetails{Level: stripThousands(g[1])}
			},
		},
		{
			Name:    "territory_takeover",
			Action:  model.ActionTerritoryTakeover,
			Guard:   contains(" has taken over the territory "),
			Capture: regexp.MustCompile(`^(.+?) has taken over the territory (.+)$`),
			Apply: func(ev *model.ParsedEvent, g []string) {
				ev.Actor = ExtractPlayer(g[1])
				// Takeovers announced for the group as a whole have no actor.
				ev.IsSystemAction = ev.Actor == nil
				ev.Details = model.TerritoryDetails{Territory: g[2]}
			},
		},
	}
}
