package emailverification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// VerificationToken is an issued token as stored. Rows are never deleted or
// marked used; a token stays valid until its signed expiry.
type VerificationToken struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository stores issued verification tokens
type Repository interface {
	CreateVerificationToken(ctx context.Context, email, token string, expiresAt time.Time) (*VerificationToken, error)
	// FindVerificationToken looks a token up by its exact string; found is false when absent
	FindVerificationToken(ctx context.Context, token string) (vt *VerificationToken, found bool, err error)
}

// PostgresRepository implements Repository on PostgreSQL
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateVerificationToken(ctx context.Context, email, token string, expiresAt time.Time) (*VerificationToken, error) {
	query := `
		INSERT INTO verification_token (id, email, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, token, expires_at, created_at
	`

	var vt VerificationToken
	err := r.db.QueryRow(ctx, query, uuid.New(), email, token, expiresAt.UTC(), time.Now().UTC()).Scan(
		&vt.ID,
		&vt.Email,
		&vt.Token,
		&vt.ExpiresAt,
		&vt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &vt, nil
}

func (r *PostgresRepository) FindVerificationToken(ctx context.Context, token string) (*VerificationToken, bool, error) {
	query := `
		SELECT id, email, token, expires_at, created_at
		FROM verification_token
		WHERE token = $1
	`

	var vt VerificationToken
	err := r.db.QueryRow(ctx, query, token).Scan(
		&vt.ID,
		&vt.Email,
		&vt.Token,
		&vt.ExpiresAt,
		&vt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return &vt, true, nil
}
