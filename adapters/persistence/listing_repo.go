package persistence

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradehub-app/tradehub/internal/domain/listing"
	"github.com/tradehub-app/tradehub/pkg/logger"
)

type postgresListingRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresListingRepo(db *pgxpool.Pool, log logger.Logger) listing.Repository {
	return &postgresListingRepo{db: db, logger: log}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// cityPredicate implements the exact-or-prefix city rule, tolerating
// hierarchical city names ("Shanghai" matches "Shanghai-Pudong").
func cityPredicate(city string) sq.Sqlizer {
	return sq.Or{
		sq.Eq{"city": city},
		sq.Like{"city": city + "%"},
	}
}

// composeBrowse builds the plain listing scan: active rows newest-first,
// optionally restricted by city, capped at the fixed page size.
func composeBrowse(city string) sq.SelectBuilder {
	builder := psql.Select("id", "title", "city", "tags").
		From("listings").
		Where(sq.Eq{"is_active": true})
	if city != "" {
		builder = builder.Where(cityPredicate(city))
	}
	return builder.
		OrderBy("created_at DESC").
		Limit(listing.PageSize)
}

// composeSearch builds the full-text shape: the sanitized query text runs
// against the listing's tsvector, best match first. websearch_to_tsquery
// tolerates quoted phrases and OR, matching what the sanitizer lets through.
func composeSearch(query, city string) sq.SelectBuilder {
	builder := psql.Select("id", "title", "city", "tags").
		From("listings").
		Where(sq.Eq{"is_active": true}).
		Where(sq.Expr("ts @@ websearch_to_tsquery('simple', ?)", query))
	if city != "" {
		builder = builder.Where(cityPredicate(city))
	}
	return builder.
		OrderByClause("ts_rank_cd(ts, websearch_to_tsquery('simple', ?)) DESC", query).
		Limit(listing.PageSize)
}

func (r *postgresListingRepo) ListActive(ctx context.Context, city string) ([]listing.Row, error) {
	return r.run(ctx, composeBrowse(city))
}

func (r *postgresListingRepo) SearchActive(ctx context.Context, query, city string) ([]listing.Row, error) {
	return r.run(ctx, composeSearch(query, city))
}

func (r *postgresListingRepo) run(ctx context.Context, builder sq.SelectBuilder) ([]listing.Row, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build listing query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute listing query: %w", err)
	}
	return scanListingRows(rows)
}

// scanListingRows decodes with nullable intermediates so a NULL in a
// mandatory column yields an invalid Row for the projector to drop, rather
// than aborting the whole batch on a scan error.
func scanListingRows(rows pgx.Rows) ([]listing.Row, error) {
	defer rows.Close()

	out := make([]listing.Row, 0, listing.PageSize)
	for rows.Next() {
		var (
			id          pgtype.Int8
			title, city pgtype.Text
			tags        pgtype.Text
		)
		if err := rows.Scan(&id, &title, &city, &tags); err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}

		row := listing.Row{ID: id.Int64, Title: title.String}
		if city.Valid {
			c := city.String
			row.City = &c
		}
		if tags.Valid {
			t := tags.String
			row.Tags = &t
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listing rows: %w", err)
	}
	return out, nil
}
