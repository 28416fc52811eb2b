package bill

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

// MySQLRepository implements Repository on MySQL or TiDB
type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) CreateBill(ctx context.Context, b Bill) (*Bill, error) {
	items, err := json.Marshal(b.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}

	query := `
		INSERT INTO bill (id, shipping_address, customer_name, customer_email, customer_phone, billing_info,
			comment, payment_method, status, total, discount, tax, shipment, items, tracking_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC().Truncate(time.Second)
	_, err = r.db.ExecContext(ctx, query,
		b.ID.String(), b.ShippingAddress, b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.BillingInfo,
		b.Comment, b.PaymentMethod, b.Status, b.Total, b.Discount, b.Tax, b.Shipment, string(items), b.TrackingCode,
		now,
	)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return nil, ErrDuplicateTrackingCode
		}
		return nil, err
	}

	b.CreatedAt = now
	return &b, nil
}
