package model

import "time"

// ActionType classifies a chat-derived event. The set is closed; lines
// that match no classification rule carry ActionUnknown.
type ActionType string

// All recognized action types.
const (
	ActionJoin              ActionType = "join"
	ActionLeave             ActionType = "leave"
	ActionPromotion         ActionType = "promotion"
	ActionDemotion          ActionType = "demotion"
	ActionKick              ActionType = "kick"
	ActionMoneyReward       ActionType = "money_reward"
	ActionBankDeposit       ActionType = "bank_deposit"
	ActionBankWithdraw      ActionType = "bank_withdraw"
	ActionWarn              ActionType = "warn"
	ActionTopScoreDeposit   ActionType = "top_score_deposit"
	ActionInvite            ActionType = "invite"
	ActionApplicationDeny   ActionType = "application_deny"
	ActionApplicationAccept ActionType = "application_accept"
	ActionApplicationSubmit ActionType = "application_submit"
	ActionApplicationDelete ActionType = "application_delete"
	ActionCreateGroup       ActionType = "create_group"
	ActionUpdateGroupInfo   ActionType = "update_group_info"
	ActionMassReward        ActionType = "mass_reward"
	ActionGroupPromotion    ActionType = "group_promotion"
	ActionTerritoryTakeover ActionType = "territory_takeover"
	ActionUnknown           ActionType = "unknown"
)

// AllActionTypes lists every concrete action type, excluding ActionUnknown.
var AllActionTypes = []ActionType{
	ActionJoin, ActionLeave, ActionPromotion, ActionDemotion, ActionKick,
	ActionMoneyReward, ActionBankDeposit, ActionBankWithdraw, ActionWarn,
	ActionTopScoreDeposit, ActionInvite, ActionApplicationDeny,
	ActionApplicationAccept, ActionApplicationSubmit, ActionApplicationDelete,
	ActionCreateGroup, ActionUpdateGroupInfo, ActionMassReward,
	ActionGroupPromotion, ActionTerritoryTakeover,
}

// IsValid reports whether t is a member of the closed action type set.
func (t ActionType) IsValid() bool {
	if t == ActionUnknown {
		return true
	}
	for _, a := range AllActionTypes {
		if t == a {
			return true
		}
	}
	return false
}

// ParsedEvent is the classifier's output for a single log line. It is
// constructed once per line and never mutated afterwards; persistence
// is the caller's concern.
type ParsedEvent struct {
	Actor          *PlayerReference
	Target         *PlayerReference
	Details        Details
	ActionType     ActionType
	RawText        string
	IsSystemAction bool
}

// DetailFields returns the event's details as a flat string map, or an
// empty map when the event carries no details.
func (e *ParsedEvent) DetailFields() map[string]string {
	if e.Details == nil {
		return map[string]string{}
	}
	return e.Details.Fields()
}

// EventRecord is a ParsedEvent as stored in the immutable event log.
type EventRecord struct {
	Timestamp      time.Time
	Details        map[string]string
	ID             string
	ActionType     ActionType
	RawText        string
	ActorNickname  string
	ActorAccount   string
	TargetNickname string
	TargetAccount  string
	IsSystemAction bool
}
