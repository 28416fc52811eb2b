package emailverification

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// MySQLRepository implements Repository on MySQL or TiDB
type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) CreateVerificationToken(ctx context.Context, email, token string, expiresAt time.Time) (*VerificationToken, error) {
	query := `INSERT INTO verification_token (id, email, token, expires_at, created_at) VALUES (?, ?, ?, ?, ?)`

	vt := VerificationToken{
		ID:        uuid.New(),
		Email:     email,
		Token:     token,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if _, err := r.db.ExecContext(ctx, query, vt.ID.String(), vt.Email, vt.Token, vt.ExpiresAt, vt.CreatedAt); err != nil {
		return nil, err
	}
	return &vt, nil
}

func (r *MySQLRepository) FindVerificationToken(ctx context.Context, token string) (*VerificationToken, bool, error) {
	query := `SELECT id, email, token, expires_at, created_at FROM verification_token WHERE token = ?`

	var vt VerificationToken
	err := r.db.QueryRowContext(ctx, query, token).Scan(&vt.ID, &vt.Email, &vt.Token, &vt.ExpiresAt, &vt.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &vt, true, nil
}
