package postgres

import (
	"context"
	"fmt"

	"github.com/avc/payout-console/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAuditLimit ограничивает выборку журнала, если лимит не задан
const DefaultAuditLimit = 50

// MaxAuditLimit ограничивает выборку журнала сверху
const MaxAuditLimit = 500

// AuditRepository реализует domain.AuditRepository
type AuditRepository struct {
	db DBTX
}

// NewAuditRepository создает новый AuditRepository
func NewAuditRepository(db DBTX) *AuditRepository {
	return &AuditRepository{db: db}
}

// Record сохраняет запись о команде над выплатой
func (r *AuditRepository) Record(ctx context.Context, rec *domain.AuditRecord) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO payout_commands (operator_id, action, shop_id, payout_id, amount, network, outcome, reason)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		rec.OperatorID, string(rec.Action), rec.ShopID, rec.PayoutID,
		rec.Amount.String(), string(rec.Network), string(rec.Outcome), rec.Reason,
	).Scan(&rec.ID, &rec.CreatedAt)

	if err != nil {
		return fmt.Errorf("repository: failed to record %s command for payout %q: %w", rec.Action, rec.PayoutID, err)
	}

	return nil
}

// ListRecent получает последние записи журнала, новые первыми
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*domain.AuditRecord, error) {
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	if limit > MaxAuditLimit {
		limit = MaxAuditLimit
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, operator_id, action, shop_id, payout_id, amount::text, network, outcome, reason, created_at
		 FROM payout_commands
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`,
		limit,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to list audit records: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.AuditRecord, 0, limit)
	for rows.Next() {
		var (
			rec                     domain.AuditRecord
			action, network, status string
			amount                  string
		)
		err := rows.Scan(&rec.ID, &rec.OperatorID, &action, &rec.ShopID, &rec.PayoutID,
			&amount, &network, &status, &rec.Reason, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan audit record: %w", err)
		}

		rec.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("repository: invalid amount %q in audit record %d: %w", amount, rec.ID, err)
		}
		rec.Action = domain.AuditAction(action)
		rec.Network = domain.Network(network)
		rec.Outcome = domain.AuditOutcome(status)

		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating audit records: %w", err)
	}

	return records, nil
}
