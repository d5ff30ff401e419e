package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/shop-sim/internal/core/domain"
	"github.com/rl1809/shop-sim/internal/logger"
)

func newRecordID() string {
	return uuid.New().String()
}

// MySQLAuditLog writes one row per checkout into checkout_audit. Rows are
// only ever inserted.
type MySQLAuditLog struct {
	db      *sql.DB
	timeout time.Duration
}

func NewMySQLAuditLog(db *sql.DB, timeout time.Duration) *MySQLAuditLog {
	return &MySQLAuditLog{db: db, timeout: timeout}
}

func (m *MySQLAuditLog) EnsureSchema(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS checkout_audit (
			id             CHAR(36)      NOT NULL PRIMARY KEY,
			session_id     VARCHAR(64)   NOT NULL,
			order_id       INT           NOT NULL,
			payment_method VARCHAR(64)   NOT NULL,
			total          DECIMAL(14,2) NOT NULL,
			line           TEXT          NOT NULL,
			created_at     DATETIME(6)   NOT NULL,
			seq            BIGINT        NOT NULL AUTO_INCREMENT UNIQUE
		)`)
	if err != nil {
		return fmt.Errorf("create checkout_audit: %w", err)
	}
	return nil
}

func (m *MySQLAuditLog) RecordCheckout(ctx context.Context, order domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	_, err := m.db.ExecContext(ctx, `
		INSERT INTO checkout_audit (id, session_id, order_id, payment_method, total, line, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		newRecordID(), logger.SessionIDFromContext(ctx), order.ID, order.PaymentMethod,
		order.TotalAmount.StringFixed(2), order.AuditLine(), order.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert audit row: %w", err)
	}

	return nil
}

// Lines returns every audit line in insertion order.
func (m *MySQLAuditLog) Lines(ctx context.Context) ([]string, error) {
	return m.queryLines(ctx, `SELECT line FROM checkout_audit ORDER BY seq`)
}

// SessionLines returns the audit lines recorded by one session.
func (m *MySQLAuditLog) SessionLines(ctx context.Context, sessionID string) ([]string, error) {
	return m.queryLines(ctx, `SELECT line FROM checkout_audit WHERE session_id = ? ORDER BY seq`, sessionID)
}

func (m *MySQLAuditLog) queryLines(ctx context.Context, query string, args ...any) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit rows: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
