package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricktrackr/internal/domain/player"
	idgen "github.com/riskibarqy/cricktrackr/internal/platform/id"
)

type PlayerRepository struct {
	db  *sqlx.DB
	ids idgen.Generator
	now func() time.Time
}

func NewPlayerRepository(db *sqlx.DB, ids idgen.Generator) *PlayerRepository {
	if ids == nil {
		ids = idgen.NewUUIDGenerator()
	}
	return &PlayerRepository{db: db, ids: ids, now: time.Now}
}

// Upsert resolves the target row under advisory locks on the patch keys, then
// updates the present columns or inserts a new row.
func (r *PlayerRepository) Upsert(ctx context.Context, patch player.Patch) (player.Player, error) {
	if err := patch.Validate(); err != nil {
		return player.Player{}, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return player.Player{}, fmt.Errorf("begin player upsert tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	extID := strings.TrimSpace(patch.ExternalID)
	name := ""
	if patch.Name != nil {
		name = strings.TrimSpace(*patch.Name)
	}
	var lockKeys []string
	if extID != "" {
		lockKeys = append(lockKeys, "ext:"+extID)
	}
	if name != "" {
		lockKeys = append(lockKeys, "name:"+name)
	}
	if err := lockPlayerKeys(ctx, tx, lockKeys...); err != nil {
		return player.Player{}, fmt.Errorf("lock player key: %w", err)
	}

	existingID, found, err := findPlayerForPatch(ctx, tx, extID, name)
	if err != nil {
		return player.Player{}, err
	}

	now := r.now().UTC()
	var out playerTableModel
	if found {
		query, args := buildPlayerUpdateQuery(existingID, playerPatchValues(patch), now)
		if err := tx.GetContext(ctx, &out, query, args...); err != nil {
			return player.Player{}, fmt.Errorf("update player id=%s: %w", existingID, err)
		}
	} else {
		id, err := r.ids.NewID()
		if err != nil {
			return player.Player{}, fmt.Errorf("generate player id: %w", err)
		}
		query, args := buildPlayerInsertQuery(patch.New(id, now))
		if err := tx.GetContext(ctx, &out, query, args...); err != nil {
			return player.Player{}, fmt.Errorf("insert player key=%s: %w", patch.Key(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return player.Player{}, fmt.Errorf("commit player upsert tx: %w", err)
	}
	return out.toDomain(), nil
}

// findPlayerForPatch applies the same key rules as player.MatchesKey: an
// external id match first, then the earliest name match that is not owned by
// a different external id.
func findPlayerForPatch(ctx context.Context, tx *sqlx.Tx, extID, name string) (string, bool, error) {
	if extID != "" {
		sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
		sb.Select("id").From("players").Where(sb.Equal("external_id", extID)).Limit(1)
		query, args := sb.Build()

		var id string
		err := tx.GetContext(ctx, &id, query, args...)
		if err == nil {
			return id, true, nil
		}
		if !isNotFound(err) {
			return "", false, fmt.Errorf("select player by external id: %w", err)
		}
	}
	if name == "" {
		return "", false, nil
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("id").From("players")
	if extID != "" {
		sb.Where(sb.Equal("name", name), sb.IsNull("external_id"))
	} else {
		sb.Where(sb.Equal("name", name))
	}
	sb.OrderBy("created_at", "id").Asc().Limit(1)
	query, args := sb.Build()

	var id string
	err := tx.GetContext(ctx, &id, query, args...)
	if err == nil {
		return id, true, nil
	}
	if isNotFound(err) {
		return "", false, nil
	}
	return "", false, fmt.Errorf("select player by name: %w", err)
}

func buildPlayerInsertQuery(item player.Player) (string, []any) {
	ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
	ib.InsertInto("players")
	ib.Cols(playerColumns...)
	ib.Values(playerRowValues(item)...)

	query, args := ib.Build()
	return query + " RETURNING " + strings.Join(playerColumns, ", "), args
}

func buildPlayerUpdateQuery(id string, values []columnValue, now time.Time) (string, []any) {
	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	ub.Update("players")
	assignments := make([]string, 0, len(values)+1)
	for _, item := range values {
		assignments = append(assignments, ub.Assign(item.column, item.value))
	}
	assignments = append(assignments, ub.Assign("updated_at", now))
	ub.Set(assignments...)
	ub.Where(ub.Equal("id", id))

	query, args := ub.Build()
	return query + " RETURNING " + strings.Join(playerColumns, ", "), args
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(playerColumns...)
	sb.From("players")
	sb.OrderBy("created_at", "id").Desc()
	query, args := sb.Build()

	var rows []playerTableModel
	err := withStatementRetry(ctx, func(ctx context.Context) error {
		rows = rows[:0]
		return r.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(playerColumns...)
	sb.From("players")
	sb.Where(sb.Equal("id", id))
	sb.Limit(1)
	query, args := sb.Build()

	var row playerTableModel
	err := withStatementRetry(ctx, func(ctx context.Context) error {
		return r.db.GetContext(ctx, &row, query, args...)
	})
	if err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	if strings.TrimSpace(item.ID) == "" {
		id, err := r.ids.NewID()
		if err != nil {
			return player.Player{}, fmt.Errorf("generate player id: %w", err)
		}
		item.ID = id
	}
	now := r.now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query, args := buildPlayerInsertQuery(item)
	var out playerTableModel
	if err := r.db.GetContext(ctx, &out, query, args...); err != nil {
		if isUniqueViolation(err) {
			return player.Player{}, fmt.Errorf("%w: %s", player.ErrDuplicateExternalID, item.ExternalID)
		}
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}
	return out.toDomain(), nil
}

func (r *PlayerRepository) Update(ctx context.Context, id string, patch player.Patch) (player.Player, bool, error) {
	query, args := buildPlayerUpdateQuery(id, playerPatchValues(patch), r.now().UTC())

	var out playerTableModel
	if err := r.db.GetContext(ctx, &out, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		if isUniqueViolation(err) {
			return player.Player{}, false, fmt.Errorf("%w: %s", player.ErrDuplicateExternalID, patch.ExternalID)
		}
		return player.Player{}, false, fmt.Errorf("update player id=%s: %w", id, err)
	}
	return out.toDomain(), true, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) (bool, error) {
	db := sqlbuilder.PostgreSQL.NewDeleteBuilder()
	db.DeleteFrom("players")
	db.Where(db.Equal("id", id))
	query, args := db.Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete player id=%s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete player rows affected: %w", err)
	}
	return affected > 0, nil
}
