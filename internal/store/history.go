package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// HistoryRepo returns a HistoryRepo backed by this store.
func (s *Store) HistoryRepo() HistoryRepo {
	return &historyRepo{db: s}
}

type historyRepo struct {
	db *Store
}

func (r *historyRepo) AppendInteraction(ctx context.Context, userID, competency string, score, difficulty, timeSpent float64) error {
	_, err := r.db.db.ExecContext(ctx,
		`INSERT INTO interactions (id, user_id, competency, score, difficulty, time_spent)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), userID, competency, score, difficulty, timeSpent)
	if err != nil {
		return fmt.Errorf("append interaction for %q: %w", userID, err)
	}
	return nil
}

func (r *historyRepo) AppendProgress(ctx context.Context, userID, topic string, status ProgressStatus, score float64) error {
	_, err := r.db.db.ExecContext(ctx,
		`INSERT INTO progress (id, user_id, topic, status, score)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), userID, topic, status, score)
	if err != nil {
		return fmt.Errorf("append progress for %q: %w", userID, err)
	}
	return nil
}

// History returns all records for a user in non-decreasing timestamp order,
// ties broken by insertion order (rowid). The mastery fold relies on this
// ordering contract; it is part of the repository interface, not an accident
// of how SQLite returns rows.
func (r *historyRepo) History(ctx context.Context, userID string) (History, error) {
	var h History

	err := r.db.db.SelectContext(ctx, &h.Progress,
		`SELECT id, user_id, topic, status, score, timestamp
		   FROM progress WHERE user_id = ?
		  ORDER BY timestamp, rowid`, userID)
	if err != nil {
		return History{}, fmt.Errorf("load progress for %q: %w", userID, err)
	}

	err = r.db.db.SelectContext(ctx, &h.Interactions,
		`SELECT id, user_id, competency, score, difficulty, time_spent, timestamp
		   FROM interactions WHERE user_id = ?
		  ORDER BY timestamp, rowid`, userID)
	if err != nil {
		return History{}, fmt.Errorf("load interactions for %q: %w", userID, err)
	}

	return h, nil
}
