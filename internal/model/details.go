package model

// Details is the action-specific payload of a ParsedEvent. Each action
// type that carries extra fields has its own variant; events without
// extra fields (join, leave, invite, ...) carry a nil Details.
//
// All values are display strings as extracted from the source line.
// Amounts and percentages have thousands separators stripped but are
// deliberately not parsed to numeric types; coercion and validation
// belong to the consumer.
type Details interface {
	// Fields flattens the payload to a string map for storage and
	// display. Empty values are omitted.
	Fields() map[string]string
}

// RankChangeDetails carries promotion and demotion payloads.
type RankChangeDetails struct {
	FromRank string
	ToRank   string
	Reason   string
}

// Fields implements Details.
func (d RankChangeDetails) Fields() map[string]string {
	return compact(map[string]string{
		"from_rank": d.FromRank,
		"to_rank":   d.ToRank,
		"reason":    d.Reason,
	})
}

// KickDetails carries the reason a player was kicked, when given.
type KickDetails struct {
	Reason string
}

// Fields implements Details.
func (d KickDetails) Fields() map[string]string {
	return compact(map[string]string{"reason": d.Reason})
}

// WarnDetails carries a warning's reason and, for percentage warnings,
// the warning level increase.
type WarnDetails struct {
	Reason          string
	WarningIncrease string
}

// Fields implements Details.
func (d WarnDetails) Fields() map[string]string {
	return compact(map[string]string{
		"reason":           d.Reason,
		"warning_increase": d.WarningIncrease,
	})
}

// MoneyDetails carries monetary payloads: rewards, bank deposits and
// withdrawals, mass rewards.
type MoneyDetails struct {
	Amount string
	Reason string
}

// Fields implements Details.
func (d MoneyDetails) Fields() map[string]string {
	return compact(map[string]string{
		"amount": d.Amount,
		"reason": d.Reason,
	})
}

// TopScoreDetails carries the number of top score points deposited.
type TopScoreDetails struct {
	Amount string
}

// Fields implements Details.
func (d TopScoreDetails) Fields() map[string]string {
	return compact(map[string]string{"amount": d.Amount})
}

// GroupLevelDetails carries the new group level after a group promotion.
type GroupLevelDetails struct {
	Level string
}

// Fields implements Details.
func (d GroupLevelDetails) Fields() map[string]string {
	return compact(map[string]string{"level": d.Level})
}

// GroupNameDetails carries the group name for creation events.
type GroupNameDetails struct {
	GroupName string
}

// Fields implements Details.
func (d GroupNameDetails) Fields() map[string]string {
	return compact(map[string]string{"group_name": d.GroupName})
}

// TerritoryDetails carries the territory name for takeover events.
type TerritoryDetails struct {
	Territory string
}

// Fields implements Details.
func (d TerritoryDetails) Fields() map[string]string {
	return compact(map[string]string{"territory": d.Territory})
}

func compact(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if v != "" {
			out[k] = v
		}
	}
	return out
}
