// Package service defines the interfaces between the parsing core and
// its collaborators.
package service

import (
	"context"
	"time"

	"github.com/groupwatch/groupwatch/internal/model"
)

// EventFilter defines filtering options for event log queries.
type EventFilter struct {
	ActionType   model.ActionType
	ActorAccount string
	Limit        int
	OnlyUnknown  bool
}

// EventSink receives parsed events. Callers must deliver events in
// arrival order; the sink appends to an immutable log and keeps the
// player roster current.
type EventSink interface {
	UpsertPlayer(ctx context.Context, accountName, nickname string, isInGroup bool) error
	LogEvent(ctx context.Context, record *model.EventRecord) error
}

// Storage is the persistence contract for players and the event log.
type Storage interface {
	EventSink

	GetPlayer(ctx context.Context, accountName string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]model.Player, error)
	ListEvents(ctx context.Context, filter EventFilter) ([]model.EventRecord, error)
	CountEventsByType(ctx context.Context) (map[model.ActionType]int, error)

	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for network-bound helpers.
// Parsing itself never retries; there is nothing to retry in pure
// computation.
type RetryOptions struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	MaxAttempts  int
}
