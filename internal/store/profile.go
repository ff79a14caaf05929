package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Profile is a learner's persistent profile: preferences, goals, and the
// per-skill Elo ratings that carry true incremental state between attempts.
type Profile struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`

	// VARK holds learning style preference scores (visual, auditory,
	// read_write, kinesthetic), each in [0,1].
	VARK map[string]float64 `json:"vark,omitempty"`

	// Goals are the competency IDs the learner is working toward.
	Goals []string `json:"goals,omitempty"`

	// Ratings maps skill ID to the current Elo-style rating.
	Ratings map[string]float64 `json:"ratings,omitempty"`
}

// DefaultProfile returns the neutral profile used for never-before-seen users.
func DefaultProfile(userID string) *Profile {
	return &Profile{
		UserID:  userID,
		VARK:    map[string]float64{},
		Ratings: map[string]float64{},
	}
}

// PreferredStyle returns the dominant VARK style, or "" if no scores are set.
func (p *Profile) PreferredStyle() string {
	best, bestScore := "", -1.0
	for style, score := range p.VARK {
		if score > bestScore || (score == bestScore && style < best) {
			best, bestScore = style, score
		}
	}
	return best
}

// ProfileRepo returns a ProfileRepo backed by this store.
func (s *Store) ProfileRepo() ProfileRepo {
	return &profileRepo{db: s}
}

type profileRepo struct {
	db *Store
}

func (r *profileRepo) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	var data string
	err := r.db.db.GetContext(ctx, &data,
		`SELECT profile_data FROM users WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultProfile(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile for %q: %w", userID, err)
	}

	var p Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("decode profile for %q: %w", userID, err)
	}
	p.UserID = userID
	if p.VARK == nil {
		p.VARK = map[string]float64{}
	}
	if p.Ratings == nil {
		p.Ratings = map[string]float64{}
	}
	return &p, nil
}

func (r *profileRepo) SetProfile(ctx context.Context, userID string, p *Profile) error {
	p.UserID = userID
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile for %q: %w", userID, err)
	}

	_, err = r.db.db.ExecContext(ctx,
		`INSERT INTO users (user_id, profile_data) VALUES (?, ?)
		 ON CONFLICT (user_id) DO UPDATE
		    SET profile_data = excluded.profile_data, updated_at = CURRENT_TIMESTAMP`,
		userID, string(data))
	if err != nil {
		return fmt.Errorf("save profile for %q: %w", userID, err)
	}
	return nil
}
