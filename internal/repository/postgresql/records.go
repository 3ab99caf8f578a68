package postgresql

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

var ErrColumnMismatch = errors.New("row columns differ from the first row")

type RecordsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewRecordsRepository(pool *pgxpool.Pool) *RecordsRepository {
	return &RecordsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// BulkInsert copies rows into table in one round trip. All rows must have the
// key set of the first one.
func (r *RecordsRepository) BulkInsert(ctx context.Context, table string, rows []map[string]any) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	db := extractDB(ctx, r.pool)

	columns := slices.Sorted(maps.Keys(rows[0]))

	copied, err := db.CopyFrom(ctx, tableIdentifier(table), columns, pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		if len(rows[i]) != len(columns) {
			return nil, fmt.Errorf("row %d: %w", i, ErrColumnMismatch)
		}

		values := make([]any, len(columns))
		for j, column := range columns {
			v, ok := rows[i][column]
			if !ok {
				return nil, fmt.Errorf("row %d, column %q: %w", i, column, ErrColumnMismatch)
			}
			values[j] = v
		}

		return values, nil
	}))
	if err != nil {
		return 0, fmt.Errorf("failed to copy rows into %s: %w", table, err)
	}

	if copied != int64(len(rows)) {
		return int(copied), fmt.Errorf("failed to copy rows into %s: copied %d rows, expected %d", table, copied, len(rows))
	}

	return int(copied), nil
}

func (r *RecordsRepository) RecordCount(ctx context.Context, table string) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(tableIdentifier(table).Sanitize()).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	var count int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, scanRowError(err)
	}

	return count, nil
}

func (r *RecordsRepository) HealthCheck(ctx context.Context) bool {
	var one int
	if err := extractDB(ctx, r.pool).QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return false
	}

	return one == 1
}

func (r *RecordsRepository) Records(
	ctx context.Context,
	table string,
	filter domain.RecordFilter,
	limit, offset uint64,
) ([]*domain.PlantGeneration, int, error) {
	db := extractDB(ctx, r.pool)

	from := tableIdentifier(table).Sanitize()

	where := sq.Eq{}
	if filter.State != "" {
		where["state"] = strings.ToUpper(filter.State)
	}
	if filter.Year != 0 {
		where["year"] = filter.Year
	}

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(from).
		Where(where).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(
			"id",
			"gen_id",
			"year",
			"state",
			"plant_name",
			"net_generation",
		).
		From(from).
		Where(where).
		OrderBy("id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.PlantGeneration])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return records, total, nil
}

// tableIdentifier accepts both "table" and "schema.table".
func tableIdentifier(table string) pgx.Identifier {
	return pgx.Identifier(strings.Split(table, "."))
}
