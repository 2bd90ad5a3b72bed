package postgres

import (
	"context"
	"errors"
	"path"
	"regexp"
	"testing"
	"time"

	"github.com/avc/payout-console/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var auditColumns = []string{"id", "operator_id", "action", "shop_id", "payout_id", "amount", "network", "outcome", "reason", "created_at"}

func TestAuditRepository_Record(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rec := &domain.AuditRecord{
			OperatorID: "op-1",
			Action:     domain.AuditActionCreate,
			ShopID:     "shop-1",
			PayoutID:   "p1",
			Amount:     decimal.RequireFromString("250.50"),
			Network:    domain.NetworkTRC20,
			Outcome:    domain.AuditOutcomeAccepted,
		}

		mock.ExpectQuery(`INSERT INTO payout_commands`).
			WithArgs("op-1", "create", "shop-1", "p1", "250.5", "trc20", "accepted", "").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

		require.NoError(t, repo.Record(ctx, rec))
		assert.Equal(t, int64(7), rec.ID)
		assert.Equal(t, now, rec.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Sub-micro amount is stored exactly", func(t *testing.T) {
		rec := &domain.AuditRecord{
			OperatorID: "op-1",
			Action:     domain.AuditActionCreate,
			ShopID:     "shop-1",
			Amount:     decimal.RequireFromString("0.0000001"),
			Network:    domain.NetworkTRC20,
			Outcome:    domain.AuditOutcomeAccepted,
		}

		mock.ExpectQuery(`INSERT INTO payout_commands`).
			WithArgs("op-1", "create", "shop-1", "", "0.0000001", "trc20", "accepted", "").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(8), time.Now()))

		require.NoError(t, repo.Record(ctx, rec))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		rec := &domain.AuditRecord{
			OperatorID: "op-1",
			Action:     domain.AuditActionDelete,
			PayoutID:   "p2",
			Amount:     decimal.Zero,
			Outcome:    domain.AuditOutcomeRejected,
			Reason:     "payout is not pending",
		}

		mock.ExpectQuery(`INSERT INTO payout_commands`).
			WithArgs("op-1", "delete", "", "p2", "0", "", "rejected", "payout is not pending").
			WillReturnError(errors.New("connection refused"))

		err := repo.Record(ctx, rec)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to record delete command")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAuditRepository_ListRecent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows(auditColumns).
			AddRow(int64(2), "op-1", "delete", "", "p1", "0", "", "accepted", "", now).
			AddRow(int64(1), "op-1", "create", "shop-1", "p1", "100.000000", "polygon", "accepted", "", now.Add(-time.Minute))

		mock.ExpectQuery(`SELECT id, operator_id, action`).
			WithArgs(10).
			WillReturnRows(rows)

		records, err := repo.ListRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, domain.AuditActionDelete, records[0].Action)
		assert.Equal(t, domain.NetworkPolygon, records[1].Network)
		assert.True(t, records[1].Amount.Equal(decimal.NewFromInt(100)))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Limit is clamped", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, operator_id, action`).
			WithArgs(DefaultAuditLimit).
			WillReturnRows(pgxmock.NewRows(auditColumns))

		records, err := repo.ListRecent(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, records)

		mock.ExpectQuery(`SELECT id, operator_id, action`).
			WithArgs(MaxAuditLimit).
			WillReturnRows(pgxmock.NewRows(auditColumns))

		_, err = repo.ListRecent(ctx, 10000)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Invalid amount", func(t *testing.T) {
		rows := pgxmock.NewRows(auditColumns).
			AddRow(int64(3), "op-1", "create", "shop-1", "", "n/a", "trc20", "failed", "timeout", time.Now())

		mock.ExpectQuery(`SELECT id, operator_id, action`).
			WithArgs(5).
			WillReturnRows(rows)

		_, err := repo.ListRecent(ctx, 5)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, operator_id, action`).
			WithArgs(5).
			WillReturnError(errors.New("connection refused"))

		records, err := repo.ListRecent(ctx, 5)
		assert.Error(t, err)
		assert.Nil(t, records)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMigrations_AmountKeepsFullPrecision(t *testing.T) {
	content, err := migrationsFS.ReadFile(path.Join("migrations", "001_create_payout_commands.up.sql"))
	require.NoError(t, err)

	// Масштаб не задан, поэтому сумма в журнале не округляется
	assert.Regexp(t, regexp.MustCompile(`amount\s+NUMERIC\s+NOT NULL`), string(content))
	assert.NotContains(t, string(content), "NUMERIC(")
}

func TestRunMigrations(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	names, err := upMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_create_payout_commands.up.sql", names[0])

	t.Run("Success", func(t *testing.T) {
		for range names {
			mock.ExpectExec(`CREATE TABLE IF NOT EXISTS`).
				WillReturnResult(pgxmock.NewResult("CREATE", 0))
		}

		require.NoError(t, RunMigrations(context.Background(), mock, zap.NewNop()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure", func(t *testing.T) {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS`).
			WillReturnError(errors.New("permission denied"))

		err := RunMigrations(context.Background(), mock, zap.NewNop())
		assert.ErrorContains(t, err, "001_create_payout_commands.up.sql")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
