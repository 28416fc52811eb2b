package settings

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// MySQLRepository implements Repository on MySQL or TiDB
type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) GetConfig(ctx context.Context) (*SystemConfig, bool, error) {
	query := `SELECT ` + selectConfigColumns + ` FROM system_config ORDER BY created_at LIMIT 1`

	var c SystemConfig
	err := r.db.QueryRowContext(ctx, query).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Password, &c.Address, &c.NIT,
		&c.ImgLogo, &c.MsgSoldOut, &c.MsgSale, &c.MsgThanks, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &c, true, nil
}

func (r *MySQLRepository) CreateConfig(ctx context.Context, cfg SystemConfig) (*SystemConfig, error) {
	query := `
		INSERT INTO system_config (id, name, email, phone, password, address, nit, img_logo, msg_sold_out, msg_sale, msg_thanks, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC().Truncate(time.Second)
	_, err := r.db.ExecContext(ctx, query,
		cfg.ID.String(), cfg.Name, cfg.Email, cfg.Phone, cfg.Password, cfg.Address, cfg.NIT,
		cfg.ImgLogo, cfg.MsgSoldOut, cfg.MsgSale, cfg.MsgThanks, now, now,
	)
	if err != nil {
		return nil, err
	}

	cfg.CreatedAt = now
	cfg.UpdatedAt = now
	return &cfg, nil
}

func (r *MySQLRepository) UpdateConfig(ctx context.Context, cfg SystemConfig) (bool, error) {
	query := `
		UPDATE system_config SET
			name = ?, email = ?, phone = ?, password = COALESCE(NULLIF(?, ''), password),
			address = ?, nit = ?, img_logo = ?, msg_sold_out = ?, msg_sale = ?, msg_thanks = ?,
			updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		cfg.Name, cfg.Email, cfg.Phone, cfg.Password, cfg.Address, cfg.NIT,
		cfg.ImgLogo, cfg.MsgSoldOut, cfg.MsgSale, cfg.MsgThanks, time.Now().UTC(),
		cfg.ID.String(),
	)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
