package bill

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository stores placed orders
type Repository interface {
	// CreateBill stores b and returns it with CreatedAt set. A tracking code
	// that is already taken gives ErrDuplicateTrackingCode.
	CreateBill(ctx context.Context, b Bill) (*Bill, error)
}

const pgUniqueViolation = "23505"

// PostgresRepository implements Repository on PostgreSQL
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateBill(ctx context.Context, b Bill) (*Bill, error) {
	items, err := json.Marshal(b.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}

	query := `
		INSERT INTO bill (id, shipping_address, customer_name, customer_email, customer_phone, billing_info,
			comment, payment_method, status, total, discount, tax, shipment, items, tracking_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at
	`

	err = r.db.QueryRow(ctx, query,
		b.ID, b.ShippingAddress, b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.BillingInfo,
		b.Comment, b.PaymentMethod, b.Status, b.Total, b.Discount, b.Tax, b.Shipment, items, b.TrackingCode,
		time.Now().UTC(),
	).Scan(&b.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateTrackingCode
		}
		return nil, err
	}
	return &b, nil
}
