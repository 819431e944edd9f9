package migrations_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/payrecon/infra/migrations"
	infrarepo "github.com/amirasaad/payrecon/infra/repository"
	"github.com/amirasaad/payrecon/pkg/domain/events"
	"github.com/amirasaad/payrecon/pkg/domain/gateway"
	"github.com/amirasaad/payrecon/pkg/domain/transaction"
	"github.com/amirasaad/payrecon/pkg/money"
	"github.com/amirasaad/payrecon/pkg/service/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()
	container, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db
}

func TestMigrationsAgainstPostgres(t *testing.T) {
	db := startPostgres(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	require.NoError(t, migrations.Up(sqlDB, slog.Default()))
	// second run is a no-op
	require.NoError(t, migrations.Up(sqlDB, slog.Default()))

	version, dirty, err := migrations.Version(sqlDB)
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(2), version)

	t.Run("concurrent settlement writes one ledger entry", func(t *testing.T) {
		ctx := context.Background()
		tx, err := transaction.New(transaction.NewParams{
			PaymentReferenceID: "ref_pg_1",
			Amount:             money.Must(5000, "NGN"),
			Type:               transaction.TypeCredit,
			Channel:            "card",
			PaymentService:     "paystack",
			Recipient:          transaction.Party{AccountNumber: "2222222222", Name: "Merchant"},
			Actor:              "test",
		})
		require.NoError(t, err)
		require.NoError(t, infrarepo.NewTransactionStore(db).Create(ctx, tx))

		svc := reconcile.New(infrarepo.NewUoW(db), nil, nil, slog.Default())
		verified := &gateway.VerificationResult{
			Reference: "ref_pg_1",
			Status:    gateway.StatusSuccess,
			Amount:    money.Must(5000, "NGN"),
		}

		const n = 24
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			outcomes = map[reconcile.Outcome]int{}
			start    = make(chan struct{})
		)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				snapshot := *tx
				res, err := svc.Reconcile(ctx, &snapshot, verified, events.SourceWebhook)
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				outcomes[res.Outcome]++
				mu.Unlock()
			}()
		}
		close(start)
		wg.Wait()

		assert.Equal(t, 1, outcomes[reconcile.OutcomeReconciled])
		assert.Equal(t, n-1, outcomes[reconcile.OutcomeAlreadyReconciled])

		var entries int64
		require.NoError(t, db.Model(&infrarepo.LedgerEntry{}).
			Where("payment_reference_id = ?", "ref_pg_1").Count(&entries).Error)
		assert.Equal(t, int64(1), entries)
	})

	require.NoError(t, migrations.Down(sqlDB, 2, slog.Default()))
	assert.False(t, db.Migrator().HasTable("transactions"))
}
