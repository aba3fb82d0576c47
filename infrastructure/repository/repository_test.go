package repository

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-insights/infrastructure/database/sqlstore"
	"github.com/vfg2006/finance-insights/internal/config"
	"github.com/vfg2006/finance-insights/internal/domain"
)

// newTestConn abre um warehouse sqlite descartável com o schema criado
func newTestConn(t *testing.T) *sqlstore.Connection {
	t.Helper()

	conn, err := sqlstore.NewConnection(context.Background(), config.Database{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "warehouse.db"),
	})
	require.NoError(t, err)

	t.Cleanup(func() { conn.Close() })

	return conn
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func testTransaction(id, clientID, date, service string, amount float64) *domain.Transaction {
	parsed, err := time.Parse("2006-01-02 15:04:05", date)
	if err != nil {
		panic(err)
	}

	return &domain.Transaction{
		ID:                    id,
		ClientID:              clientID,
		Date:                  parsed,
		Amount:                amount,
		RawService:            service,
		ServiceCategory:       domain.NormalizeService(service),
		RawPaymentMethod:      "cash",
		PaymentMethodCategory: domain.PaymentCash,
		City:                  strPtr("Moscow"),
	}
}

func TestTransactionRepository_UpsertLatestWins(t *testing.T) {
	conn := newTestConn(t)
	repo := NewTransactionRepository(conn)

	first := testTransaction("tx-1", "cl-1", "2024-01-10 09:00:00", "Tax Planning", 100)
	require.NoError(t, repo.UpsertBatch(conn, []*domain.Transaction{first}))

	second := testTransaction("tx-1", "cl-1", "2024-01-10 09:00:00", "Tax Planning", 250)
	require.NoError(t, repo.UpsertBatch(conn, []*domain.Transaction{second}))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	points, err := repo.MonthlyRevenue()
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 250.0, points[0].Revenue)
}

func TestTransactionRepository_TopServicesByCountTieBreak(t *testing.T) {
	conn := newTestConn(t)
	repo := NewTransactionRepository(conn)

	// Três serviços empatados em contagem: Financial Planning sai na
	// frente pela receita; Audit e Tax Planning empatam também na
	// receita e o nome desempata. Valuation fica por último mesmo com a
	// maior receita individual, porque a contagem manda primeiro.
	batch := []*domain.Transaction{
		testTransaction("tx-1", "cl-1", "2024-01-10 09:00:00", "Audit", 300),
		testTransaction("tx-2", "cl-1", "2024-01-11 09:00:00", "Audit", 400),
		testTransaction("tx-3", "cl-1", "2024-01-12 09:00:00", "Tax Planning", 250),
		testTransaction("tx-4", "cl-1", "2024-01-13 09:00:00", "Tax Planning", 450),
		testTransaction("tx-5", "cl-1", "2024-01-14 09:00:00", "Financial Planning", 500),
		testTransaction("tx-6", "cl-1", "2024-01-15 09:00:00", "Financial Planning", 400),
		testTransaction("tx-7", "cl-1", "2024-01-16 09:00:00", "Valuation", 5000),
	}
	require.NoError(t, repo.UpsertBatch(conn, batch))

	services, err := repo.TopServicesByCount(4)
	require.NoError(t, err)

	require.Len(t, services, 4)
	assert.Equal(t, "Financial Planning", services[0].Service)
	assert.Equal(t, 900.0, services[0].TotalRevenue)
	assert.Equal(t, "Audit", services[1].Service)
	assert.Equal(t, 700.0, services[1].TotalRevenue)
	assert.Equal(t, "Tax Planning", services[2].Service)
	assert.Equal(t, 700.0, services[2].TotalRevenue)
	assert.Equal(t, "Valuation", services[3].Service)
	assert.Equal(t, 1, services[3].OrderCount)
}

// Visões agregadas usadas na verificação de independência de ordem
type aggregatedViews struct {
	topServices []domain.ServiceCount
	byCity      []domain.DimensionRevenue
	byPayment   []domain.DimensionRevenue
	monthly     []domain.MonthlyRevenuePoint
	payments    []domain.PaymentShare
}

func collectViews(t *testing.T, batch []*domain.Transaction) aggregatedViews {
	t.Helper()

	conn := newTestConn(t)
	repo := NewTransactionRepository(conn)
	require.NoError(t, repo.UpsertBatch(conn, batch))

	views := aggregatedViews{}
	var err error

	views.topServices, err = repo.TopServicesByCount(10)
	require.NoError(t, err)
	views.byCity, err = repo.RevenueByCity()
	require.NoError(t, err)
	views.byPayment, err = repo.RevenueByPaymentMethod()
	require.NoError(t, err)
	views.monthly, err = repo.MonthlyRevenue()
	require.NoError(t, err)
	views.payments, err = repo.PaymentMethodDistribution()
	require.NoError(t, err)

	return views
}

func TestTransactionRepository_AggregationsAreOrderIndependent(t *testing.T) {
	batch := []*domain.Transaction{
		testTransaction("tx-1", "cl-1", "2024-01-10 09:00:00", "Audit", 300.25),
		testTransaction("tx-2", "cl-1", "2024-01-11 09:00:00", "Audit", 400.75),
		testTransaction("tx-3", "cl-1", "2024-02-12 09:00:00", "Tax Planning", 250.5),
		testTransaction("tx-4", "cl-1", "2024-02-13 09:00:00", "Tax Planning", 450.5),
		testTransaction("tx-5", "cl-2", "2024-03-14 09:00:00", "Financial Planning", 900),
		testTransaction("tx-6", "cl-2", "2024-03-15 09:00:00", "Valuation", 120.1),
	}
	batch[4].City = strPtr("Kazan")
	batch[5].City = strPtr("Kazan")
	batch[5].RawPaymentMethod = "Credit Card"
	batch[5].PaymentMethodCategory = domain.PaymentCreditCard

	baseline := collectViews(t, batch)

	// A mesma foto do warehouse produz as mesmas visões, em qualquer
	// ordem de inserção dos registros
	for seed := int64(1); seed <= 5; seed++ {
		shuffled := make([]*domain.Transaction, len(batch))
		copy(shuffled, batch)

		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		assert.Equal(t, baseline, collectViews(t, shuffled))
	}
}

func TestTransactionRepository_FlagMissingClients(t *testing.T) {
	conn := newTestConn(t)
	transactionRepo := NewTransactionRepository(conn)
	clientRepo := NewClientRepository(conn)

	require.NoError(t, clientRepo.UpsertBatch(conn, []*domain.Client{
		{ID: "cl-1", Gender: domain.GenderFemale, NetWorth: floatPtr(50_000)},
	}))

	batch := []*domain.Transaction{
		testTransaction("tx-1", "cl-1", "2024-01-10 09:00:00", "Audit", 100),
		testTransaction("tx-2", "cl-ghost", "2024-01-11 09:00:00", "Audit", 100),
		testTransaction("tx-3", "cl-ghost", "2024-01-12 09:00:00", "Audit", 100),
	}
	require.NoError(t, transactionRepo.UpsertBatch(conn, batch))

	orphans, err := transactionRepo.FlagMissingClients(conn)
	require.NoError(t, err)
	assert.Equal(t, int64(2), orphans)

	// Reexecução zera e recontabiliza, sem acumular
	orphans, err = transactionRepo.FlagMissingClients(conn)
	require.NoError(t, err)
	assert.Equal(t, int64(2), orphans)
}

func TestTransactionRepository_MonthlyRevenueOrdering(t *testing.T) {
	conn := newTestConn(t)
	repo := NewTransactionRepository(conn)

	batch := []*domain.Transaction{
		testTransaction("tx-1", "cl-1", "2024-03-05 10:00:00", "Audit", 50),
		testTransaction("tx-2", "cl-1", "2024-01-10 09:00:00", "Audit", 100),
		testTransaction("tx-3", "cl-1", "2024-01-20 09:00:00", "Audit", 200),
	}
	require.NoError(t, repo.UpsertBatch(conn, batch))

	points, err := repo.MonthlyRevenue()
	require.NoError(t, err)

	// Fevereiro não aparece: a lacuna é tratada pelo agregador
	require.Len(t, points, 2)
	assert.Equal(t, "2024-01", points[0].Period)
	assert.Equal(t, 300.0, points[0].Revenue)
	assert.Equal(t, 2, points[0].TransactionCount)
	assert.Equal(t, "2024-03", points[1].Period)
}

func TestTransactionRepository_LastMonthRevenue(t *testing.T) {
	conn := newTestConn(t)
	repo := NewTransactionRepository(conn)

	batch := []*domain.Transaction{
		testTransaction("tx-1", "cl-1", "2024-02-10 09:00:00", "Audit", 120.5),
		testTransaction("tx-2", "cl-1", "2024-02-20 09:00:00", "Audit", 80),
		testTransaction("tx-3", "cl-1", "2024-03-02 09:00:00", "Audit", 999),
	}
	require.NoError(t, repo.UpsertBatch(conn, batch))

	// Março é o mês corrente (incompleto); a referência é fevereiro
	revenue, err := repo.LastMonthRevenue()
	require.NoError(t, err)
	assert.Equal(t, 200.5, revenue)
}

func TestTransactionRepository_LastMonthRevenueEmptyStore(t *testing.T) {
	conn := newTestConn(t)
	repo := NewTransactionRepository(conn)

	revenue, err := repo.LastMonthRevenue()
	require.NoError(t, err)
	assert.Equal(t, 0.0, revenue)
}

func TestTransactionRepository_PaymentMethodDistribution(t *testing.T) {
	conn := newTestConn(t)
	repo := NewTransactionRepository(conn)

	batch := []*domain.Transaction{
		testTransaction("tx-1", "cl-1", "2024-01-10 09:00:00", "Audit", 100),
		testTransaction("tx-2", "cl-1", "2024-01-11 09:00:00", "Audit", 100),
		testTransaction("tx-3", "cl-1", "2024-01-12 09:00:00", "Audit", 100),
		testTransaction("tx-4", "cl-1", "2024-01-13 09:00:00", "Audit", 100),
	}
	batch[3].RawPaymentMethod = "Credit Card"
	batch[3].PaymentMethodCategory = domain.PaymentCreditCard

	require.NoError(t, repo.UpsertBatch(conn, batch))

	shares, err := repo.PaymentMethodDistribution()
	require.NoError(t, err)

	require.Len(t, shares, 2)
	assert.Equal(t, "cash", shares[0].Method)
	assert.Equal(t, 75.0, shares[0].Percentage)
	assert.Equal(t, "Credit Card", shares[1].Method)
	assert.Equal(t, 25.0, shares[1].Percentage)
}

func TestTransactionRepository_ServiceWithMaxRevenueEmptyStore(t *testing.T) {
	conn := newTestConn(t)
	repo := NewTransactionRepository(conn)

	service, err := repo.ServiceWithMaxRevenue()
	require.NoError(t, err)
	assert.Nil(t, service)
}

func TestClientRepository_SegmentStats(t *testing.T) {
	conn := newTestConn(t)
	clientRepo := NewClientRepository(conn)
	transactionRepo := NewTransactionRepository(conn)

	clients := []*domain.Client{
		{ID: "cl-low", Gender: domain.GenderMale, Age: intPtr(40), NetWorth: floatPtr(50_000)},
		{ID: "cl-high", Gender: domain.GenderFemale, NetWorth: floatPtr(2_000_000)},
		{ID: "cl-unknown", Gender: domain.GenderUnknown},
	}
	require.NoError(t, clientRepo.UpsertBatch(conn, clients))

	batch := []*domain.Transaction{
		testTransaction("tx-1", "cl-low", "2024-01-10 09:00:00", "Audit", 100),
		testTransaction("tx-2", "cl-low", "2024-01-11 09:00:00", "Audit", 300),
	}
	require.NoError(t, transactionRepo.UpsertBatch(conn, batch))

	segments, err := clientRepo.SegmentStats()
	require.NoError(t, err)
	require.Len(t, segments, 3)

	bySegment := make(map[domain.NetWorthSegment]domain.ClientSegmentStats)
	for _, segment := range segments {
		bySegment[segment.Segment] = segment
	}

	low := bySegment[domain.SegmentLow]
	assert.Equal(t, 1, low.ClientCount)
	assert.Equal(t, 2, low.TransactionCount)
	assert.Equal(t, 400.0, low.TotalRevenue)
	assert.Equal(t, 400.0, low.AvgRevenuePerClient)
	assert.Equal(t, 200.0, low.AvgTransaction)

	// Patrimônio desconhecido forma o próprio segmento, sem descarte
	unknown := bySegment[domain.SegmentUnknown]
	assert.Equal(t, 1, unknown.ClientCount)
	assert.Equal(t, 0, unknown.TransactionCount)
	assert.Equal(t, 0.0, unknown.TotalRevenue)

	high := bySegment[domain.SegmentHigh]
	assert.Equal(t, 1, high.ClientCount)
	assert.Equal(t, 0, high.TransactionCount)
}

func TestClientRepository_CountWithoutTransactions(t *testing.T) {
	conn := newTestConn(t)
	clientRepo := NewClientRepository(conn)
	transactionRepo := NewTransactionRepository(conn)

	require.NoError(t, clientRepo.UpsertBatch(conn, []*domain.Client{
		{ID: "cl-1", Gender: domain.GenderMale},
		{ID: "cl-2", Gender: domain.GenderFemale},
	}))
	require.NoError(t, transactionRepo.UpsertBatch(conn, []*domain.Transaction{
		testTransaction("tx-1", "cl-1", "2024-01-10 09:00:00", "Audit", 100),
	}))

	count, err := clientRepo.CountWithoutTransactions()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSnapshotRepository_SaveAndRetrieve(t *testing.T) {
	conn := newTestConn(t)
	repo := NewSnapshotRepository(conn)

	older := &domain.AnalysisResult{
		RunID:            "run-older",
		GeneratedAt:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		LastMonthRevenue: 1000,
	}
	newer := &domain.AnalysisResult{
		RunID:            "run-newer",
		GeneratedAt:      time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC),
		LastMonthRevenue: 2000,
	}

	params := &AnalysisParameters{LoadMode: config.LoadModeReplace, TopServicesLimit: 5}
	require.NoError(t, repo.Save(older, params))
	require.NoError(t, repo.Save(newer, params))

	latest, err := repo.GetLatest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "run-newer", latest.RunID)
	assert.Equal(t, 2000.0, latest.LastMonthRevenue)

	byID, err := repo.GetByRunID("run-older")
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, 1000.0, byID.LastMonthRevenue)

	runs, err := repo.ListRuns(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-newer", runs[0].RunID)
}

func TestSnapshotRepository_MissingSnapshots(t *testing.T) {
	conn := newTestConn(t)
	repo := NewSnapshotRepository(conn)

	latest, err := repo.GetLatest()
	require.NoError(t, err)
	assert.Nil(t, latest)

	byID, err := repo.GetByRunID("nope")
	require.NoError(t, err)
	assert.Nil(t, byID)
}
