package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

var adminColumns = []string{"id", "name", "email", "password", "created_at", "updated_at"}

// AdminRepository handles admin database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanAdmin(row rowScanner) (*models.Admin, error) {
	admin := &models.Admin{}
	err := row.Scan(&admin.ID, &admin.Name, &admin.Email, &admin.Password, &admin.CreatedAt, &admin.UpdatedAt)
	return admin, err
}

// Create inserts a new admin and fills its id and timestamps
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	sql, args, err := r.sb.Insert("admins").
		Columns("name", "email", "password").
		Values(admin.Name, admin.Email, admin.Password).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create admin query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if appErr := translateWriteError(err); appErr != nil {
			return appErr
		}
		logger.Error().Err(err).Str("email", admin.Email).Msg("Error executing create admin query")
		return fmt.Errorf("error creating admin: %w", err)
	}
	return nil
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

func (r *AdminRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns...).
		From("admins").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin: %w", err)
	}
	return admin, nil
}

// ExistsByEmail reports whether another admin uses email
func (r *AdminRepository) ExistsByEmail(ctx context.Context, email string, excludeAdminID int64) (bool, error) {
	return exists(ctx, r.db, r.sb, "admins", excludeID(squirrel.And{squirrel.Eq{"email": email}}, "id", excludeAdminID))
}

// Update replaces the mutable fields of an admin
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	sql, args, err := r.sb.Update("admins").
		SetMap(map[string]interface{}{
			"name":       admin.Name,
			"email":      admin.Email,
			"password":   admin.Password,
			"updated_at": squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": admin.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update admin query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if appErr := translateWriteError(err); appErr != nil {
			return appErr
		}
		logger.Error().Err(err).Int64("adminID", admin.ID).Msg("Error executing update admin query")
		return fmt.Errorf("error updating admin: %w", err)
	}
	return nil
}

// Delete removes an admin
func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, r.sb, "admins", id)
}

// List returns one page of admins and the total count
func (r *AdminRepository) List(ctx context.Context, query models.PageQuery) ([]*models.Admin, int64, error) {
	return r.findPage(ctx, nil, query)
}

// SearchByName returns one page of admins whose name contains name, ignoring case
func (r *AdminRepository) SearchByName(ctx context.Context, name string, query models.PageQuery) ([]*models.Admin, int64, error) {
	return r.findPage(ctx, nameFilter("name", name), query)
}

// Count returns the number of admins
func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, r.sb.Select("COUNT(*)").From("admins"))
}

func (r *AdminRepository) findPage(ctx context.Context, where squirrel.Sqlizer, query models.PageQuery) ([]*models.Admin, int64, error) {
	countBuilder := r.sb.Select("COUNT(*)").From("admins")
	selectBuilder := r.sb.Select(adminColumns...).From("admins")
	if where != nil {
		countBuilder = countBuilder.Where(where)
		selectBuilder = selectBuilder.Where(where)
	}

	total, err := count(ctx, r.db, countBuilder)
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := selectBuilder.
		OrderBy(query.OrderBy(), "id ASC").
		Limit(uint64(query.Size)).
		Offset(query.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list admins query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list admins query")
		return nil, 0, fmt.Errorf("error querying admins: %w", err)
	}
	defer rows.Close()

	admins := []*models.Admin{}
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning admin row: %w", err)
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating admin rows: %w", err)
	}

	return admins, total, nil
}
