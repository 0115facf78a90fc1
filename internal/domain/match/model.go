package match

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultStatus = "Upcoming"
	UnknownVenue  = "Unknown"
)

// Match is a reconciled cricket fixture.
type Match struct {
	ID         string
	ExternalID string
	Name       string
	Teams      []string
	TeamA      string
	TeamB      string
	Venue      string
	Status     string
	StartTime  *time.Time
	MatchType  string
	// Score is the provider score payload, stored as-is.
	Score     json.RawMessage
	Result    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicID is the identifier exposed to consumers: the external id when known.
func (m Match) PublicID() string {
	if m.ExternalID != "" {
		return m.ExternalID
	}
	return m.ID
}

// Patch is a partial match record keyed by ExternalID. Nil pointers, a nil
// Teams slice and a nil Score are treated as absent and never written.
// ClearStartTime writes a null start time when StartTime is nil.
type Patch struct {
	ExternalID string
	Name       *string
	Teams      []string
	TeamA      *string
	TeamB      *string
	Venue      *string
	Status     *string
	StartTime  *time.Time
	MatchType  *string
	Score      json.RawMessage
	Result     *string

	ClearStartTime bool
}

func (p Patch) Validate() error {
	if strings.TrimSpace(p.ExternalID) == "" {
		return fmt.Errorf("match external id is required")
	}
	if len(p.Score) > 0 && !json.Valid(p.Score) {
		return fmt.Errorf("match score must be valid JSON")
	}
	return nil
}

// Apply overlays the present fields of the patch onto dst.
func (p Patch) Apply(dst *Match) {
	dst.ExternalID = strings.TrimSpace(p.ExternalID)
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Teams != nil {
		dst.Teams = append([]string{}, p.Teams...)
	}
	if p.TeamA != nil {
		dst.TeamA = *p.TeamA
	}
	if p.TeamB != nil {
		dst.TeamB = *p.TeamB
	}
	if p.Venue != nil {
		dst.Venue = *p.Venue
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.StartTime != nil {
		v := p.StartTime.UTC()
		dst.StartTime = &v
	} else if p.ClearStartTime {
		dst.StartTime = nil
	}
	if p.MatchType != nil {
		dst.MatchType = *p.MatchType
	}
	if p.Score != nil {
		dst.Score = append(json.RawMessage{}, p.Score...)
	}
	if p.Result != nil {
		dst.Result = *p.Result
	}
}

// New builds the record created when no stored match carries the patch key.
func (p Patch) New(id string, now time.Time) Match {
	out := Match{
		ID:        id,
		Teams:     []string{},
		Status:    DefaultStatus,
		Score:     json.RawMessage("[]"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Apply(&out)
	return out
}

// InWindow reports whether the match starts at or after since.
func (m Match) InWindow(since time.Time) bool {
	return m.StartTime != nil && !m.StartTime.Before(since)
}
