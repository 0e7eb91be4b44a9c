package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/groupwatch/groupwatch/internal/common"
	"github.com/groupwatch/groupwatch/internal/model"
)

// UpsertPlayer creates or refreshes a player record keyed by account
// name. Nickname and membership state are overwritten with the latest
// observation; first_seen is preserved.
func (s *SQLiteStorage) UpsertPlayer(ctx context.Context, accountName, nickname string, isInGroup bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(accountName, "accountName"); err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (account_name, nickname, is_in_group, first_seen, last_seen)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(account_name) DO UPDATE SET
			nickname = excluded.nickname,
			is_in_group = excluded.is_in_group,
			last_seen = excluded.last_seen
	`, accountName, nickname, isInGroup, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by account name.
func (s *SQLiteStorage) GetPlayer(ctx context.Context, accountName string) (*model.Player, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(accountName, "accountName"); err != nil {
		return nil, err
	}

	var player model.Player
	err := s.db.QueryRowContext(ctx, `
		SELECT account_name, nickname, is_in_group, first_seen, last_seen
		FROM players
		WHERE account_name = ?
	`, accountName).Scan(
		&player.AccountName,
		&player.Nickname,
		&player.IsInGroup,
		&player.FirstSeen,
		&player.LastSeen,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &player, nil
}

// ListPlayers retrieves every known player, current members first.
func (s *SQLiteStorage) ListPlayers(ctx context.Context) ([]model.Player, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT account_name, nickname, is_in_group, first_seen, last_seen
		FROM players
		ORDER BY is_in_group DESC, account_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var players []model.Player
	for rows.Next() {
		var player model.Player
		if err := rows.Scan(
			&player.AccountName,
			&player.Nickname,
			&player.IsInGroup,
			&player.FirstSeen,
			&player.LastSeen,
		); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}

	return players, rows.Err()
}
