package settings

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository stores the system configuration row
type Repository interface {
	// GetConfig returns the configuration; found is false when none exists yet
	GetConfig(ctx context.Context) (cfg *SystemConfig, found bool, err error)
	CreateConfig(ctx context.Context, cfg SystemConfig) (*SystemConfig, error)
	// UpdateConfig overwrites the row with cfg.ID. An empty password keeps the
	// stored one. updated is false when no row has that ID.
	UpdateConfig(ctx context.Context, cfg SystemConfig) (updated bool, err error)
}

// PostgresRepository implements Repository on PostgreSQL
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectConfigColumns = `id, name, email, phone, password, address, nit, img_logo, msg_sold_out, msg_sale, msg_thanks, created_at, updated_at`

func (r *PostgresRepository) GetConfig(ctx context.Context) (*SystemConfig, bool, error) {
	query := `SELECT ` + selectConfigColumns + ` FROM system_config ORDER BY created_at LIMIT 1`

	var c SystemConfig
	err := r.db.QueryRow(ctx, query).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Password, &c.Address, &c.NIT,
		&c.ImgLogo, &c.MsgSoldOut, &c.MsgSale, &c.MsgThanks, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &c, true, nil
}

func (r *PostgresRepository) CreateConfig(ctx context.Context, cfg SystemConfig) (*SystemConfig, error) {
	query := `
		INSERT INTO system_config (id, name, email, phone, password, address, nit, img_logo, msg_sold_out, msg_sale, msg_thanks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING ` + selectConfigColumns

	var c SystemConfig
	err := r.db.QueryRow(ctx, query,
		cfg.ID, cfg.Name, cfg.Email, cfg.Phone, cfg.Password, cfg.Address, cfg.NIT,
		cfg.ImgLogo, cfg.MsgSoldOut, cfg.MsgSale, cfg.MsgThanks, time.Now().UTC(),
	).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Password, &c.Address, &c.NIT,
		&c.ImgLogo, &c.MsgSoldOut, &c.MsgSale, &c.MsgThanks, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) UpdateConfig(ctx context.Context, cfg SystemConfig) (bool, error) {
	query := `
		UPDATE system_config SET
			name = $2, email = $3, phone = $4, password = COALESCE(NULLIF($5, ''), password),
			address = $6, nit = $7, img_logo = $8, msg_sold_out = $9, msg_sale = $10, msg_thanks = $11,
			updated_at = $12
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		cfg.ID, cfg.Name, cfg.Email, cfg.Phone, cfg.Password, cfg.Address, cfg.NIT,
		cfg.ImgLogo, cfg.MsgSoldOut, cfg.MsgSale, cfg.MsgThanks, time.Now().UTC(),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
