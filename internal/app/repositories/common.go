package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

func count(ctx context.Context, db *pgxpool.Pool, builder squirrel.SelectBuilder) (int64, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Str("sql", sql).Msg("Error executing count query")
		return 0, fmt.Errorf("error counting rows: %w", err)
	}
	return total, nil
}

func exists(ctx context.Context, db *pgxpool.Pool, sb squirrel.StatementBuilderType, table string, where squirrel.Sqlizer) (bool, error) {
	sql, args, err := sb.Select("1").From(table).Where(where).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var one int
	if err := db.QueryRow(ctx, sql, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error().Err(err).Str("table", table).Msg("Error executing exists query")
		return false, fmt.Errorf("error checking %s: %w", table, err)
	}
	return true, nil
}

func deleteByID(ctx context.Context, db *pgxpool.Pool, sb squirrel.StatementBuilderType, table string, id int64) error {
	sql, args, err := sb.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	cmdTag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", table).Int64("id", id).Msg("Error executing delete query")
		return fmt.Errorf("error deleting from %s: %w", table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
