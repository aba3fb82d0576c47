package warehousing

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-insights/infrastructure/database/sqlstore"
	"github.com/vfg2006/finance-insights/infrastructure/repository"
	"github.com/vfg2006/finance-insights/internal/config"
	"github.com/vfg2006/finance-insights/internal/domain"
)

// Cargas contra um warehouse sqlite real, para as propriedades que os
// mocks não cobrem: idempotência do replace e latest-wins do append.

type warehouseFixture struct {
	service         Service
	transactionRepo repository.TransactionRepository
	clientRepo      repository.ClientRepository
}

func newWarehouseFixture(t *testing.T) *warehouseFixture {
	t.Helper()

	conn, err := sqlstore.NewConnection(context.Background(), config.Database{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "warehouse.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	transactionRepo := repository.NewTransactionRepository(conn)
	clientRepo := repository.NewClientRepository(conn)

	return &warehouseFixture{
		service:         NewService(conn, transactionRepo, clientRepo),
		transactionRepo: transactionRepo,
		clientRepo:      clientRepo,
	}
}

func storedTransaction(id, clientID string, amount float64) *domain.Transaction {
	return &domain.Transaction{
		ID:                    id,
		ClientID:              clientID,
		Date:                  time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
		Amount:                amount,
		RawService:            "Audit",
		ServiceCategory:       domain.ServiceUnknown,
		RawPaymentMethod:      "cash",
		PaymentMethodCategory: domain.PaymentCash,
	}
}

func TestService_ReplaceIsIdempotent(t *testing.T) {
	fixture := newWarehouseFixture(t)
	ctx := context.Background()

	clients := []*domain.Client{{ID: "cl-1", Gender: domain.GenderMale}}
	transactions := []*domain.Transaction{
		storedTransaction("tx-1", "cl-1", 100),
		storedTransaction("tx-2", "cl-1", 200),
	}

	first, err := fixture.service.Load(ctx, config.LoadModeReplace, transactions, clients)
	require.NoError(t, err)

	second, err := fixture.service.Load(ctx, config.LoadModeReplace, transactions, clients)
	require.NoError(t, err)

	assert.Equal(t, first.TransactionsInStore, second.TransactionsInStore)
	assert.Equal(t, first.ClientsInStore, second.ClientsInStore)
	assert.Equal(t, 2, second.TransactionsInStore)
	assert.Equal(t, 1, second.ClientsInStore)
}

func TestService_ReplaceDropsPriorContents(t *testing.T) {
	fixture := newWarehouseFixture(t)
	ctx := context.Background()

	oldBatch := []*domain.Transaction{
		storedTransaction("tx-old-1", "cl-1", 100),
		storedTransaction("tx-old-2", "cl-1", 100),
	}
	clients := []*domain.Client{{ID: "cl-1", Gender: domain.GenderMale}}

	_, err := fixture.service.Load(ctx, config.LoadModeReplace, oldBatch, clients)
	require.NoError(t, err)

	newBatch := []*domain.Transaction{storedTransaction("tx-new", "cl-1", 300)}
	result, err := fixture.service.Load(ctx, config.LoadModeReplace, newBatch, clients)
	require.NoError(t, err)

	// O warehouse contém exatamente o lote novo, nada do anterior
	assert.Equal(t, 1, result.TransactionsInStore)
}

func TestService_AppendLatestWins(t *testing.T) {
	fixture := newWarehouseFixture(t)
	ctx := context.Background()

	clients := []*domain.Client{{ID: "cl-1", Gender: domain.GenderMale}}

	_, err := fixture.service.Load(ctx, config.LoadModeAppend,
		[]*domain.Transaction{storedTransaction("tx-1", "cl-1", 100)}, clients)
	require.NoError(t, err)

	result, err := fixture.service.Load(ctx, config.LoadModeAppend,
		[]*domain.Transaction{
			storedTransaction("tx-1", "cl-1", 999),
			storedTransaction("tx-2", "cl-1", 50),
		}, clients)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TransactionsInStore)

	points, err := fixture.transactionRepo.MonthlyRevenue()
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 1049.0, points[0].Revenue)
}

func TestService_OrphanTransactionsAreFlaggedNotDropped(t *testing.T) {
	fixture := newWarehouseFixture(t)
	ctx := context.Background()

	transactions := []*domain.Transaction{
		storedTransaction("tx-1", "cl-1", 100),
		storedTransaction("tx-2", "cl-ghost", 100),
	}
	clients := []*domain.Client{{ID: "cl-1", Gender: domain.GenderMale}}

	result, err := fixture.service.Load(ctx, config.LoadModeReplace, transactions, clients)
	require.NoError(t, err)

	assert.Equal(t, 1, result.OrphanTransactions)
	assert.Equal(t, 2, result.TransactionsInStore)
}
