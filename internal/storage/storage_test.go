package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupwatch/groupwatch/internal/common"
	"github.com/groupwatch/groupwatch/internal/model"
	"github.com/groupwatch/groupwatch/internal/service"
	"github.com/groupwatch/groupwatch/internal/testutil"
)

func TestUpsertPlayer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Storage.UpsertPlayer(ctx, "acc_alice", "Alice", true))

	player, err := db.Storage.GetPlayer(ctx, "acc_alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", player.Nickname)
	assert.True(t, player.IsInGroup)

	// A later observation overwrites nickname and membership.
	require.NoError(t, db.Storage.UpsertPlayer(ctx, "acc_alice", "Alice2", false))

	player, err = db.Storage.GetPlayer(ctx, "acc_alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice2", player.Nickname)
	assert.False(t, player.IsInGroup)

	players, err := db.Storage.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 1)
}

func TestGetPlayerNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)

	_, err := db.Storage.GetPlayer(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLogEventRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	record := &model.EventRecord{
		ActionType:     model.ActionPromotion,
		RawText:        "Alice (acc_alice) is promoting Bob (acc_bob) from Member to Sentinel",
		ActorNickname:  "Alice",
		ActorAccount:   "acc_alice",
		TargetNickname: "Bob",
		TargetAccount:  "acc_bob",
		Details: map[string]string{
			"from_rank": "Member",
			"to_rank":   "Sentinel",
		},
	}
	require.NoError(t, db.Storage.LogEvent(ctx, record))
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.Timestamp.IsZero())

	records, err := db.Storage.ListEvents(ctx, service.EventFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, model.ActionPromotion, got.ActionType)
	assert.Equal(t, record.RawText, got.RawText)
	assert.Equal(t, "Alice", got.ActorNickname)
	assert.Equal(t, "acc_bob", got.TargetAccount)
	assert.Equal(t, record.Details, got.Details)
	assert.False(t, got.IsSystemAction)
}

func TestLogEventValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		record *model.EventRecord
		name   string
	}{
		{name: "nil record", record: nil},
		{name: "missing action type", record: &model.EventRecord{RawText: "x"}},
		{name: "unrecognized action type", record: &model.EventRecord{ActionType: "nonsense", RawText: "x"}},
		{name: "missing raw text", record: &model.EventRecord{ActionType: model.ActionJoin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, db.Storage.LogEvent(ctx, tt.record))
		})
	}
}

func TestListEventsFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seed := []*model.EventRecord{
		{Timestamp: base, ActionType: model.ActionJoin, RawText: "Bob (acc_bob) has joined the group", ActorAccount: "acc_bob"},
		{Timestamp: base.Add(time.Second), ActionType: model.ActionKick, RawText: "Alice (acc_alice) has kicked Bob (acc_bob) from the group", ActorAccount: "acc_alice"},
		{Timestamp: base.Add(2 * time.Second), ActionType: model.ActionUnknown, RawText: "something odd", IsSystemAction: false},
		{Timestamp: base.Add(3 * time.Second), ActionType: model.ActionJoin, RawText: "Carl (acc_carl) has joined the group", ActorAccount: "acc_carl"},
	}
	for _, r := range seed {
		require.NoError(t, db.Storage.LogEvent(ctx, r))
	}

	byType, err := db.Storage.ListEvents(ctx, service.EventFilter{ActionType: model.ActionJoin})
	require.NoError(t, err)
	assert.Len(t, byType, 2)

	byActor, err := db.Storage.ListEvents(ctx, service.EventFilter{ActorAccount: "acc_alice"})
	require.NoError(t, err)
	require.Len(t, byActor, 1)
	assert.Equal(t, model.ActionKick, byActor[0].ActionType)

	unknown, err := db.Storage.ListEvents(ctx, service.EventFilter{OnlyUnknown: true})
	require.NoError(t, err)
	require.Len(t, unknown, 1)
	assert.Equal(t, "something odd", unknown[0].RawText)

	limited, err := db.Storage.ListEvents(ctx, service.EventFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	// Oldest first: the log reads in arrival order.
	assert.Equal(t, "Bob (acc_bob) has joined the group", limited[0].RawText)

	counts, err := db.Storage.CountEventsByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[model.ActionJoin])
	assert.Equal(t, 1, counts[model.ActionKick])
	assert.Equal(t, 1, counts[model.ActionUnknown])
}
