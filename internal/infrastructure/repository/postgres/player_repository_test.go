package postgres

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/cricktrackr/internal/domain/player"
)

func TestBuildPlayerInsertQuery_StoresEmptyExternalIDAsNull(t *testing.T) {
	t.Parallel()

	name := "Shubman Gill"
	item := player.Patch{Name: &name}.New("id-1", time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))

	query, args := buildPlayerInsertQuery(item)
	if !strings.HasPrefix(query, "INSERT INTO players (id, external_id, name") {
		t.Fatalf("unexpected insert prefix: %s", query)
	}
	if !strings.HasSuffix(query, " RETURNING "+strings.Join(playerColumns, ", ")) {
		t.Fatalf("missing returning clause: %s", query)
	}
	if len(args) != len(playerColumns) {
		t.Fatalf("expected %d args, got %d", len(playerColumns), len(args))
	}
	if ext, ok := args[1].(sql.NullString); !ok || ext.Valid {
		t.Fatalf("expected NULL external id, got %#v", args[1])
	}
	if args[3] != player.UnknownTeam || args[4] != string(player.RoleOther) {
		t.Fatalf("unexpected defaults: team=%#v role=%#v", args[3], args[4])
	}
}

func TestBuildPlayerUpdateQuery_SetsPresentColumnsOnly(t *testing.T) {
	t.Parallel()

	runs := 7000
	role := player.RoleBatsman
	values := playerPatchValues(player.Patch{ExternalID: "ext-9", Runs: &runs, Role: &role})
	now := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	query, args := buildPlayerUpdateQuery("id-1", values, now)
	if !strings.HasPrefix(query, "UPDATE players SET external_id = $1, role = $2, runs = $3, updated_at = $4 WHERE id = $5") {
		t.Fatalf("unexpected update query: %s", query)
	}
	if strings.Contains(query, "wickets =") {
		t.Fatalf("absent wickets must not be set: %s", query)
	}
	if len(args) != 5 || args[4] != "id-1" {
		t.Fatalf("unexpected args: %#v", args)
	}
	if got, ok := args[3].(time.Time); !ok || !got.Equal(now) {
		t.Fatalf("expected updated_at arg, got %#v", args[3])
	}
}

func TestPlayerPatchValues_SkipsBlankExternalID(t *testing.T) {
	t.Parallel()

	name := "Kane Williamson"
	values := playerPatchValues(player.Patch{ExternalID: "  ", Name: &name})
	if cols := columnNames(values); strings.Join(cols, ",") != "name" {
		t.Fatalf("unexpected columns: %v", cols)
	}
}

func TestPlayerTableModel_ToDomain(t *testing.T) {
	t.Parallel()

	row := playerTableModel{
		ID:         "id-1",
		ExternalID: sql.NullString{},
		Name:       "Rashid Khan",
		Team:       "Afghanistan",
		Role:       "Bowler",
		Wickets:    150,
		Economy:    6.4,
	}
	got := row.toDomain()
	if got.ExternalID != "" || got.Role != player.RoleBowler || got.Wickets != 150 || got.Economy != 6.4 {
		t.Fatalf("unexpected conversion: %+v", got)
	}
}
