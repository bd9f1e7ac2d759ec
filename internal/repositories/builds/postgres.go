package builds

import (
	"context"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/errors"
)

// uniqueViolation is the Postgres SQLSTATE for duplicate keys
const uniqueViolation = "23505"

// DB is the part of pgxpool.Pool the repository uses
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	db DB
}

// PostgresConfig contains configuration for the Postgres builds repository
type PostgresConfig struct {
	DB DB
}

// Validate validates the PostgresConfig
func (cfg *PostgresConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewPostgres creates a builds repository on the builds table
func NewPostgres(cfg *PostgresConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &postgresRepository{db: cfg.DB}, nil
}

const selectBuild = `
	SELECT id, owner_id, name, slots, animal, created_at, updated_at
	FROM builds`

func (r *postgresRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateBuild(input.Build); err != nil {
		return nil, err
	}
	b := input.Build

	slots := b.Slots
	if slots == nil {
		slots = []entities.BuildSlot{}
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO builds (id, owner_id, name, slots, animal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.OwnerID, b.Name, slots, b.Animal, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, errors.AlreadyExistsf(errBuildExists, b.ID)
		}
		return nil, errors.Wrapf(err, "failed to insert build %s", b.ID)
	}

	return &CreateOutput{Build: b}, nil
}

func (r *postgresRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	b, err := scanBuild(r.db.QueryRow(ctx, selectBuild+` WHERE id = $1`, input.ID))
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NotFoundf(errBuildNotFound, input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get build %s", input.ID)
	}
	return &GetOutput{Build: b}, nil
}

func (r *postgresRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	rows, err := r.db.Query(ctx, selectBuild+` WHERE owner_id = $1 ORDER BY created_at, id`, input.OwnerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query builds for owner %s", input.OwnerID)
	}
	defer rows.Close()

	builds := make([]*entities.Build, 0)
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan build row")
		}
		builds = append(builds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate build rows")
	}

	return &ListOutput{Builds: builds}, nil
}

func (r *postgresRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM builds WHERE id = $1`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete build %s", input.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, errors.NotFoundf(errBuildNotFound, input.ID)
	}
	return &DeleteOutput{}, nil
}

func scanBuild(row pgx.Row) (*entities.Build, error) {
	var b entities.Build
	if err := row.Scan(&b.ID, &b.OwnerID, &b.Name, &b.Slots, &b.Animal, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()
	return &b, nil
}
