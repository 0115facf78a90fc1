package player

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrDuplicateExternalID = errors.New("player external id already exists")

// Role is the closed set of playing roles a player can hold.
type Role string

const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-Rounder"
	RoleWicketKeeper Role = "Wicket-Keeper"
	RoleOther        Role = "Other"
)

var AllRoles = map[Role]struct{}{
	RoleBatsman:      {},
	RoleBowler:       {},
	RoleAllRounder:   {},
	RoleWicketKeeper: {},
	RoleOther:        {},
}

const UnknownTeam = "Unknown"

// Stats holds the flat career numbers kept for a player.
type Stats struct {
	Matches        int
	Runs           int
	Hundreds       int
	Fifties        int
	BattingAverage float64
	Wickets        int
	StrikeRate     float64
	Economy        float64
}

// Player is a reconciled cricketer record.
type Player struct {
	ID         string
	ExternalID string
	Name       string
	Team       string
	Role       Role
	Stats
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Team) == "" {
		return fmt.Errorf("player team is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	return nil
}

// HasSparseStats reports whether the record still carries placeholder numbers.
func (p Player) HasSparseStats() bool {
	return p.Runs <= 1 && p.Wickets <= 1 && p.Matches <= 1
}

// Patch is a partial player record. Nil fields are left untouched on upsert.
type Patch struct {
	ExternalID     string
	Name           *string
	Team           *string
	Role           *Role
	Matches        *int
	Runs           *int
	Hundreds       *int
	Fifties        *int
	BattingAverage *float64
	Wickets        *int
	StrikeRate     *float64
	Economy        *float64
}

// Key returns the lookup key of the patch: external id when set, name otherwise.
func (p Patch) Key() string {
	if id := strings.TrimSpace(p.ExternalID); id != "" {
		return "ext:" + id
	}
	if p.Name != nil {
		return "name:" + strings.TrimSpace(*p.Name)
	}
	return ""
}

func (p Patch) Validate() error {
	if key := p.Key(); key == "" || key == "name:" {
		return fmt.Errorf("player external id or name is required")
	}
	if p.Role != nil {
		if _, ok := AllRoles[*p.Role]; !ok {
			return fmt.Errorf("invalid player role: %s", *p.Role)
		}
	}
	return nil
}

// Apply overlays the present fields of the patch onto dst.
func (p Patch) Apply(dst *Player) {
	if id := strings.TrimSpace(p.ExternalID); id != "" {
		dst.ExternalID = id
	}
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Team != nil {
		dst.Team = *p.Team
	}
	if p.Role != nil {
		dst.Role = *p.Role
	}
	if p.Matches != nil {
		dst.Matches = *p.Matches
	}
	if p.Runs != nil {
		dst.Runs = *p.Runs
	}
	if p.Hundreds != nil {
		dst.Hundreds = *p.Hundreds
	}
	if p.Fifties != nil {
		dst.Fifties = *p.Fifties
	}
	if p.BattingAverage != nil {
		dst.BattingAverage = *p.BattingAverage
	}
	if p.Wickets != nil {
		dst.Wickets = *p.Wickets
	}
	if p.StrikeRate != nil {
		dst.StrikeRate = *p.StrikeRate
	}
	if p.Economy != nil {
		dst.Economy = *p.Economy
	}
}

// New builds the record created when no stored player matches the patch.
func (p Patch) New(id string, now time.Time) Player {
	out := Player{
		ID:        id,
		Team:      UnknownTeam,
		Role:      RoleOther,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Apply(&out)
	return out
}

// StatsPatch builds a patch that writes every stat field of s.
func StatsPatch(s Stats) Patch {
	return Patch{
		Matches:        &s.Matches,
		Runs:           &s.Runs,
		Hundreds:       &s.Hundreds,
		Fifties:        &s.Fifties,
		BattingAverage: &s.BattingAverage,
		Wickets:        &s.Wickets,
		StrikeRate:     &s.StrikeRate,
		Economy:        &s.Economy,
	}
}

// MatchesKey reports whether existing is the record addressed by the patch.
// An external id match always wins. Without one, a name match only selects
// records that carry no external id of their own, so two distinct provider
// players sharing a name are never merged.
func MatchesKey(existing Player, patch Patch) (byExternalID bool, byName bool) {
	extID := strings.TrimSpace(patch.ExternalID)
	if extID != "" && existing.ExternalID == extID {
		return true, false
	}
	if patch.Name == nil {
		return false, false
	}
	name := strings.TrimSpace(*patch.Name)
	if name == "" || existing.Name != name {
		return false, false
	}
	if extID != "" && existing.ExternalID != "" {
		return false, false
	}
	return false, true
}
