package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricktrackr/internal/domain/match"
	idgen "github.com/riskibarqy/cricktrackr/internal/platform/id"
)

type MatchRepository struct {
	db  *sqlx.DB
	ids idgen.Generator
	now func() time.Time
}

func NewMatchRepository(db *sqlx.DB, ids idgen.Generator) *MatchRepository {
	if ids == nil {
		ids = idgen.NewUUIDGenerator()
	}
	return &MatchRepository{db: db, ids: ids, now: time.Now}
}

// Upsert is one INSERT ... ON CONFLICT statement, so overlapping upserts of
// the same external id serialize on the unique index.
func (r *MatchRepository) Upsert(ctx context.Context, patch match.Patch) (match.Match, error) {
	if err := patch.Validate(); err != nil {
		return match.Match{}, err
	}

	id, err := r.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	row := patch.New(id, r.now().UTC())

	query, args := buildMatchUpsertQuery(row, matchPatchColumns(patch))

	var out matchTableModel
	if err := r.db.GetContext(ctx, &out, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("upsert match external_id=%s: %w", row.ExternalID, err)
	}
	return out.toDomain(), nil
}

func buildMatchUpsertQuery(row match.Match, presentColumns []string) (string, []any) {
	ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
	ib.InsertInto("matches")
	ib.Cols(matchColumns...)
	ib.Values(matchRowValues(row)...)

	query, args := ib.Build()
	query += " ON CONFLICT (external_id) DO UPDATE SET " + buildConflictSet(presentColumns) +
		" RETURNING " + strings.Join(matchColumns, ", ")
	return query, args
}

func (r *MatchRepository) ListSince(ctx context.Context, since time.Time) ([]match.Match, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(matchColumns...)
	sb.From("matches")
	sb.Where(sb.GreaterEqualThan("start_time", since.UTC()))
	sb.OrderBy("start_time", "id").Asc()

	query, args := sb.Build()

	var rows []matchTableModel
	err := withStatementRetry(ctx, func(ctx context.Context) error {
		rows = rows[:0]
		return r.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("select matches since %s: %w", since.UTC().Format(time.RFC3339), err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
