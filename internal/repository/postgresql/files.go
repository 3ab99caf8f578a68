package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

const TableFiles = "files"

var fileColumns = []string{
	"key",
	"bucket",
	"last_modified",
	"status",
	"records_loaded",
	"error_message",
	"processed_at",
}

// FilesRepository is the load ledger: one row per source object.
type FilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewFilesRepository(pool *pgxpool.Pool) *FilesRepository {
	return &FilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *FilesRepository) Files(ctx context.Context, limit, offset uint64) ([]*domain.File, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(fileColumns...).
		From(TableFiles).
		OrderBy("processed_at DESC NULLS LAST", "key ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.File])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return files, nil
}

// File returns nil without an error when the object has never been seen.
func (r *FilesRepository) File(ctx context.Context, bucket, key string) (*domain.File, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(fileColumns...).
		From(TableFiles).
		Where(sq.Eq{"bucket": bucket, "key": key}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	file, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.File])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, collectRowsError(err)
	}

	return file, nil
}

func (r *FilesRepository) UpdateOrCreateFile(ctx context.Context, file *domain.File) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableFiles).
		Columns(fileColumns...).
		Values(
			file.Key,
			file.Bucket,
			file.LastModified,
			file.Status,
			file.RecordsLoaded,
			file.ErrorMessage,
			file.ProcessedAt,
		).
		Suffix(`ON CONFLICT (bucket, key) DO UPDATE SET
			last_modified = EXCLUDED.last_modified,
			status = EXCLUDED.status,
			records_loaded = EXCLUDED.records_loaded,
			error_message = EXCLUDED.error_message,
			processed_at = EXCLUDED.processed_at
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}
