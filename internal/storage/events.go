package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/groupwatch/groupwatch/internal/model"
	"github.com/groupwatch/groupwatch/internal/service"
)

// LogEvent appends one record to the immutable event log. A missing ID
// gets a fresh UUID and a zero timestamp is stamped with the current
// time; existing records are never updated.
func (s *SQLiteStorage) LogEvent(ctx context.Context, record *model.EventRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateEventRecord(record); err != nil {
		return err
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	var details sql.NullString
	if len(record.Details) > 0 {
		data, err := json.Marshal(record.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal event details: %w", err)
		}
		details = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (
			id, ts, action_type, raw_text,
			actor_nickname, actor_account, target_nickname, target_account,
			details, is_system_action
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.ID,
		record.Timestamp,
		string(record.ActionType),
		record.RawText,
		record.ActorNickname,
		record.ActorAccount,
		record.TargetNickname,
		record.TargetAccount,
		details,
		record.IsSystemAction,
	)
	if err != nil {
		return fmt.Errorf("failed to log event: %w", err)
	}

	return nil
}

// ListEvents retrieves event log entries matching the filter, oldest
// first so the log reads in arrival order.
func (s *SQLiteStorage) ListEvents(ctx context.Context, filter service.EventFilter) ([]model.EventRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := strings.Builder{}
	query.WriteString(`
		SELECT id, ts, action_type, raw_text,
			actor_nickname, actor_account, target_nickname, target_account,
			details, is_system_action
		FROM events
	`)

	var conds []string
	var args []any
	if filter.OnlyUnknown {
		conds = append(conds, "action_type = ?")
		args = append(args, string(model.ActionUnknown))
	} else if filter.ActionType != "" {
		conds = append(conds, "action_type = ?")
		args = append(args, string(filter.ActionType))
	}
	if filter.ActorAccount != "" {
		conds = append(conds, "actor_account = ?")
		args = append(args, filter.ActorAccount)
	}
	if len(conds) > 0 {
		query.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	query.WriteString(" ORDER BY ts, id")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.EventRecord
	for rows.Next() {
		record, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// CountEventsByType aggregates the event log by action type.
func (s *SQLiteStorage) CountEventsByType(ctx context.Context) (map[model.ActionType]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT action_type, COUNT(*)
		FROM events
		GROUP BY action_type
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[model.ActionType]int)
	for rows.Next() {
		var actionType string
		var count int
		if err := rows.Scan(&actionType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan event count: %w", err)
		}
		counts[model.ActionType(actionType)] = count
	}

	return counts, rows.Err()
}

func scanEvent(rows *sql.Rows) (model.EventRecord, error) {
	var record model.EventRecord
	var actorNickname, actorAccount, targetNickname, targetAccount sql.NullString
	var details sql.NullString
	var actionType string

	if err := rows.Scan(
		&record.ID,
		&record.Timestamp,
		&actionType,
		&record.RawText,
		&actorNickname,
		&actorAccount,
		&targetNickname,
		&targetAccount,
		&details,
		&record.IsSystemAction,
	); err != nil {
		return record, fmt.Errorf("failed to scan event: %w", err)
	}

	record.ActionType = model.ActionType(actionType)
	record.ActorNickname = actorNickname.String
	record.ActorAccount = actorAccount.String
	record.TargetNickname = targetNickname.String
	record.TargetAccount = targetAccount.String

	if details.Valid && details.String != "" {
		if err := json.Unmarshal([]byte(details.String), &record.Details); err != nil {
			return record, fmt.Errorf("failed to unmarshal event details: %w", err)
		}
	}

	return record, nil
}
