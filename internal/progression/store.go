package progression

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/grammar-quest/backend/internal/models"
)

// PostgresStore persists each user's progress as a single JSON blob, plus
// an append-only XP event log for auditing.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// LoadProgress reads the user's blob. A missing row or a blob that fails
// to decode yields the zero-state default. Database errors are returned to
// the caller.
func (s *PostgresStore) LoadProgress(userID int64) (models.UserProgress, error) {
	var raw []byte
	err := s.db.QueryRow(
		`SELECT data FROM user_progress WHERE user_id = $1`,
		userID,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return models.DefaultProgress(), nil
	}
	if err != nil {
		return models.DefaultProgress(), fmt.Errorf("load progress: %w", err)
	}

	var p models.UserProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Printf("[progression] corrupt progress blob for user %d, resetting: %v", userID, err)
		return models.DefaultProgress(), nil
	}
	return p.Normalize(), nil
}

// SaveProgress upserts the whole blob. Called once per user action.
func (s *PostgresStore) SaveProgress(userID int64, p models.UserProgress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO user_progress (user_id, data, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET data = $2, updated_at = NOW()`,
		userID, raw,
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// LogXPEvent records an applied XP delta with its context.
func (s *PostgresStore) LogXPEvent(userID int64, eventType string, xpAmount int, metadata map[string]interface{}) error {
	var metaJSON *string
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err == nil {
			str := string(b)
			metaJSON = &str
		}
	}
	_, err := s.db.Exec(
		`INSERT INTO xp_events (user_id, event_type, xp_amount, metadata)
		 VALUES ($1, $2, $3, $4)`,
		userID, eventType, xpAmount, metaJSON,
	)
	return err
}

// DeleteProgress clears the blob as part of a full reset.
func (s *PostgresStore) DeleteProgress(userID int64) error {
	_, err := s.db.Exec(`DELETE FROM user_progress WHERE user_id = $1`, userID)
	return err
}
