package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Run status values
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// SourcingRun represents one sourcing run record
type SourcingRun struct {
	ID             uuid.UUID   `json:"id"`
	Request        string      `json:"request"`
	Skills         StringArray `json:"skills"`
	Seniority      string      `json:"seniority"`
	Quantity       int         `json:"quantity"`
	QueryCount     int         `json:"query_count"`
	ResultCount    int         `json:"result_count"`
	CandidateCount int         `json:"candidate_count"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	CompletedAt    *time.Time  `json:"completed_at,omitempty"`
}

// ShortlistEntry represents one ranked candidate stored for a run.
// Profile carries the full candidate payload as JSONB.
type ShortlistEntry struct {
	ID         uuid.UUID   `json:"id"`
	RunID      uuid.UUID   `json:"run_id"`
	Rank       int         `json:"rank"`
	Name       string      `json:"name"`
	Skills     StringArray `json:"skills"`
	RiskScore  int         `json:"risk_score"`
	MatchScore float64     `json:"match_score"`
	ProfileURL string      `json:"profile_url,omitempty"`
	Profile    any         `json:"profile,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
