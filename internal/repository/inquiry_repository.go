package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/register-my-marriage/internal/queue"
)

// mysqlDuplicateEntry is MySQL error 1062 (ER_DUP_ENTRY).
const mysqlDuplicateEntry = 1062

const createInquiriesTable = `CREATE TABLE IF NOT EXISTS contact_inquiries (
  id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
  inquiry_id CHAR(36) NOT NULL,
  tenant VARCHAR(64) NOT NULL,
  name VARCHAR(255) NOT NULL,
  email VARCHAR(255) NOT NULL,
  phone VARCHAR(16) NOT NULL,
  religion VARCHAR(128) NOT NULL DEFAULT '',
  query_type VARCHAR(64) NOT NULL,
  marriage_date DATE NULL,
  state VARCHAR(64) NOT NULL,
  message TEXT NOT NULL,
  preferred_contact VARCHAR(16) NOT NULL,
  submitted_at DATETIME NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE KEY uq_contact_inquiries_inquiry_id (inquiry_id),
  KEY idx_contact_inquiries_tenant (tenant, submitted_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// InquiryRepo stores contact inquiries in the contact_inquiries table.
type InquiryRepo struct{ DB *sql.DB }

func NewInquiryRepo(db *sql.DB) *InquiryRepo { return &InquiryRepo{DB: db} }

// EnsureSchema creates the table when it does not exist yet.
func (r *InquiryRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, createInquiriesTable)
	return err
}

// Create inserts one inquiry. A second insert of the same inquiry id
// returns ErrDuplicate.
func (r *InquiryRepo) Create(ctx context.Context, ev queue.ContactSubmittedEvent) error {
	submitted, err := time.Parse(time.RFC3339, ev.SubmittedAt)
	if err != nil {
		return fmt.Errorf("%w: submitted_at %q", ErrInvalid, ev.SubmittedAt)
	}
	var marriageDate sql.NullTime
	if strings.TrimSpace(ev.MarriageDate) != "" {
		t, err := time.Parse("2006-01-02", ev.MarriageDate)
		if err != nil {
			return fmt.Errorf("%w: marriage_date %q", ErrInvalid, ev.MarriageDate)
		}
		marriageDate = sql.NullTime{Time: t, Valid: true}
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO contact_inquiries
		   (inquiry_id, tenant, name, email, phone, religion, query_type, marriage_date, state, message, preferred_contact, submitted_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		ev.InquiryID, ev.Tenant, ev.Name, ev.Email, ev.Phone, ev.Religion, ev.QueryType,
		marriageDate, ev.State, ev.Message, ev.PreferredContact, submitted.UTC())
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return ErrDuplicate
	}
	return err
}

// SaveInquiry is the worker entry point: duplicates count as stored.
func (r *InquiryRepo) SaveInquiry(ctx context.Context, ev queue.ContactSubmittedEvent) error {
	if err := r.Create(ctx, ev); err != nil && !errors.Is(err, ErrDuplicate) {
		return err
	}
	return nil
}

// CountByTenant returns how many inquiries each tenant received since t.
func (r *InquiryRepo) CountByTenant(ctx context.Context, since time.Time) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT tenant, COUNT(*) FROM contact_inquiries WHERE submitted_at >= ? GROUP BY tenant",
		since.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var (
			tenant string
			n      int
		)
		if err := rows.Scan(&tenant, &n); err != nil {
			return nil, err
		}
		out[tenant] = n
	}
	return out, rows.Err()
}
