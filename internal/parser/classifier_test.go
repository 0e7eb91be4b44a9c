package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupwatch/groupwatch/internal/model"
)

func TestClassifyNoEvent(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		line string
	}{
		{name: "empty line", line: ""},
		{name: "whitespace only", line: "   \t  "},
		{name: "bot origin marker", line: "[BOT] relay connected"},
		{name: "bot origin marker inside bold", line: "**[BOT] relay connected**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, c.Classify(tt.line))
		})
	}
}

func TestStripBoldIdempotent(t *testing.T) {
	inputs := []string{
		"**Alice (acc_alice) has joined the group**",
		"plain text",
		"**nested **bold** runs**",
		"****",
	}
	for _, in := range inputs {
		once := StripBold(in)
		assert.Equal(t, once, StripBold(once), "input %q", in)
	}
}

func TestClassifyActionTypes(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		details map[string]string
		actor   *model.PlayerReference
		target  *model.PlayerReference
		name    string
		line    string
		action  model.ActionType
		system  bool
	}{
		{
			name:   "join",
			line:   "Bob (acc_bob) has joined the group",
			action: model.ActionJoin,
			actor:  &model.PlayerReference{Nickname: "Bob", AccountName: "acc_bob"},
		},
		{
			name:   "leave",
			line:   "Bob (acc_bob) has left the group",
			action: model.ActionLeave,
			actor:  &model.PlayerReference{Nickname: "Bob", AccountName: "acc_bob"},
		},
		{
			name:    "promotion",
			line:    "Alice (acc_alice) is promoting Bob (acc_bob) from Member to Sentinel (good work)",
			action:  model.ActionPromotion,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			target:  &model.PlayerReference{Nickname: "Bob", AccountName: "acc_bob"},
			details: map[string]string{"from_rank": "Member", "to_rank": "Sentinel", "reason": "good work"},
		},
		{
			name:    "promotion without reason",
			line:    "Alice (acc_alice) is promoting Bob (acc_bob) from Member to Sentinel",
			action:  model.ActionPromotion,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			target:  &model.PlayerReference{Nickname: "Bob", AccountName: "acc_bob"},
			details: map[string]string{"from_rank": "Member", "to_rank": "Sentinel"},
		},
		{
			name:    "promotion short form",
			line:    "Alice (acc_alice) has promoted Bob (acc_bob) to Sentinel",
			action:  model.ActionPromotion,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			target:  &model.PlayerReference{Nickname: "Bob", AccountName: "acc_bob"},
			details: map[string]string{"to_rank": "Sentinel"},
		},
		{
			name:    "demotion",
			line:    "Alice (acc_alice) is demoting Bob (acc_bob) from Sentinel to Member (inactivity)",
			action:  model.ActionDemotion,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			target:  &model.PlayerReference{Nickname: "Bob", AccountName: "acc_bob"},
			details: map[string]string{"from_rank": "Sentinel", "to_rank": "Member", "reason": "inactivity"},
		},
		{
			name:    "demotion short form",
			line:    "Alice (acc_alice) has demoted Bob (acc_bob) to Member",
			action:  model.ActionDemotion,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			target:  &model.PlayerReference{Nickname: "Bob", AccountName: "acc_bob"},
			details: map[string]string{"to_rank": "Member"},
		},
		{
			name:    "kick",
			line:    "Alice (acc_alice) has kicked Bob (acc_bob) from the group for reason inactivity",
			action:  model.ActionKick,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			target:  &model.PlayerReference{Nickname: "Bob", AccountName: "acc_bob"},
			details: map[string]string{"reason": "inactivity"},
		},
		{
			name:    "kick by system",
			line:    "Bob (acc_bob) was kicked from the group (too many warnings)",
			action:  model.ActionKick,
			system:  true,
			target:  &model.PlayerReference{Nickname: "Bob", AccountName: "acc_bob"},
			details: map[string]string{"reason": "too many warnings"},
		},
		{
			name:    "money reward",
			line:    "Alice (acc_alice) has rewarded Bob (acc_bob) with $1,000,000 for reason event win",
			action:  model.ActionMoneyReward,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			target:  &model.PlayerReference{Nickname: "Bob", AccountName: "acc_bob"},
			details: map[string]string{"amount": "1000000", "reason": "event win"},
		},
		{
			name:    "bank deposit by player",
			line:    "Alice (acc_alice) deposited $5,000 in the group bank",
			action:  model.ActionBankDeposit,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			details: map[string]string{"amount": "5000"},
		},
		{
			name:    "bank deposit by system",
			line:    "$1,500,000 deposited to REDACTED bank (Weekly Tax)",
			action:  model.ActionBankDeposit,
			system:  true,
			details: map[string]string{"amount": "1500000", "reason": "Weekly Tax"},
		},
		{
			name:    "bank withdraw",
			line:    "Alice (acc_alice) withdrew $2,000 from the group bank (event payout)",
			action:  model.ActionBankWithdraw,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			details: map[string]string{"amount": "2000", "reason": "event payout"},
		},
		{
			name:    "warn with percentage",
			line:    "Alice (acc_alice) has warned Bob (acc_bob) (+20%) for reason spamming",
			action:  model.ActionWarn,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			target:  &model.PlayerReference{Nickname: "Bob", AccountName: "acc_bob"},
			details: map[string]string{"warning_increase": "20", "reason": "spamming"},
		},
		{
			name:    "warn plain",
			line:    "Alice (acc_alice) warned Bob (acc_bob) for reason being afk",
			action:  model.ActionWarn,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			target:  &model.PlayerReference{Nickname: "Bob", AccountName: "acc_bob"},
			details: map[string]string{"reason": "being afk"},
		},
		{
			name:    "top score deposit",
			line:    "Alice (acc_alice) deposited 250 top score points",
			action:  model.ActionTopScoreDeposit,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			details: map[string]string{"amount": "250"},
		},
		{
			name:   "invite",
			line:   "Alice (acc_alice) has invited NewGuy to the group",
			action: model.ActionInvite,
			actor:  &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			target: &model.PlayerReference{Nickname: "NewGuy"},
		},
		{
			name:   "application deny",
			line:   "Alice (acc_alice) has Denied the application of NewGuy",
			action: model.ActionApplicationDeny,
			actor:  &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			target: &model.PlayerReference{Nickname: "NewGuy"},
		},
		{
			name:   "application accept",
			line:   "Alice (acc_alice) has Accepted the application of NewGuy",
			action: model.ActionApplicationAccept,
			actor:  &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			target: &model.PlayerReference{Nickname: "NewGuy"},
		},
		{
			name:   "application submit",
			line:   "NewGuy has submitted an application",
			action: model.ActionApplicationSubmit,
			actor:  &model.PlayerReference{Nickname: "NewGuy"},
		},
		{
			name:   "application delete",
			line:   "Alice (acc_alice) has deleted the application of NewGuy",
			action: model.ActionApplicationDelete,
			actor:  &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			target: &model.PlayerReference{Nickname: "NewGuy"},
		},
		{
			name:    "create group",
			line:    "Alice (acc_alice) has created the group Sentinels",
			action:  model.ActionCreateGroup,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			details: map[string]string{"group_name": "Sentinels"},
		},
		{
			name:   "update group info",
			line:   "Alice (acc_alice) has updated the group info",
			action: model.ActionUpdateGroupInfo,
			actor:  &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
		},
		{
			name:    "mass reward",
			line:    "Alice (acc_alice) rewarded all group members with $100,000 (weekly activity)",
			action:  model.ActionMassReward,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			details: map[string]string{"amount": "100000", "reason": "weekly activity"},
		},
		{
			name:    "group promotion",
			line:    "The group is now level 5",
			action:  model.ActionGroupPromotion,
			system:  true,
			details: map[string]string{"level": "5"},
		},
		{
			name:    "territory takeover with actor",
			line:    "Alice (acc_alice) has taken over the territory Docks",
			action:  model.ActionTerritoryTakeover,
			actor:   &model.PlayerReference{Nickname: "Alice", AccountName: "acc_alice"},
			details: map[string]string{"territory": "Docks"},
		},
		{
			name:    "territory takeover by group",
			line:    "The group has taken over the territory Docks",
			action:  model.ActionTerritoryTakeover,
			system:  true,
			details: map[string]string{"territory": "Docks"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := c.Classify(tt.line)
			require.NotNil(t, ev)
			assert.Equal(t, tt.action, ev.ActionType)
			assert.Equal(t, tt.system, ev.IsSystemAction)
			assert.Equal(t, tt.actor, ev.Actor)
			assert.Equal(t, tt.target, ev.Target)
			assert.Equal(t, tt.line, ev.RawText)

			want := tt.details
			if want == nil {
				want = map[string]string{}
			}
			assert.Equal(t, want, ev.DetailFields())
		})
	}
}

func TestClassifyBoldMarkupStripped(t *testing.T) {
	c := NewClassifier()

	ev := c.Classify("**Bob (acc_bob)** has joined the group")
	require.NotNil(t, ev)
	assert.Equal(t, model.ActionJoin, ev.ActionType)
	assert.Equal(t, "Bob (acc_bob) has joined the group", ev.RawText)
}

func TestClassifyLenientDegrade(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		line string
	}{
		// Guard passes but the capture regex cannot: the line is
		// consumed and degrades to unknown instead of trying later,
		// less specific rules.
		{name: "promotion guard without rank clause", line: "Alice (acc_alice) is promoting chaos"},
		{name: "withdraw guard without bank clause", line: "Alice (acc_alice) withdrew $500 from petty cash"},
		{name: "no rule at all", line: "The server restarted unexpectedly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := c.Classify(tt.line)
			require.NotNil(t, ev)
			assert.Equal(t, model.ActionUnknown, ev.ActionType)
			assert.Empty(t, ev.DetailFields())
			assert.Equal(t, tt.line, ev.RawText)
		})
	}
}

func TestRuleOrderingSpecificBeforeGeneral(t *testing.T) {
	c := NewClassifier()

	// Both the percentage warn rule and the plain warn rule's guards
	// pass here; the specific one must win.
	ev := c.Classify("Alice (acc_alice) has warned Bob (acc_bob) (+15%)")
	require.NotNil(t, ev)
	assert.Equal(t, model.ActionWarn, ev.ActionType)
	assert.Equal(t, map[string]string{"warning_increase": "15"}, ev.DetailFields())

	// And the rule table itself keeps the registration order.
	var warnPercentIdx, warnIdx int = -1, -1
	for i, rule := range c.Rules() {
		switch rule.Name {
		case "warn_percent":
			warnPercentIdx = i
		case "warn":
			warnIdx = i
		}
	}
	require.GreaterOrEqual(t, warnPercentIdx, 0)
	require.GreaterOrEqual(t, warnIdx, 0)
	assert.Less(t, warnPercentIdx, warnIdx)
}

func TestEveryActionTypeCovered(t *testing.T) {
	c := NewClassifier()

	covered := make(map[model.ActionType]bool)
	for _, rule := range c.Rules() {
		covered[rule.Action] = true
	}
	for _, action := range model.AllActionTypes {
		assert.True(t, covered[action], "no rule produces %s", action)
	}
}
