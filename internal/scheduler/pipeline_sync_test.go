package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-insights/internal/config"
	"github.com/vfg2006/finance-insights/internal/domain"
)

// stubPipeline conta execuções e permite segurar a execução em andamento
type stubPipeline struct {
	mu      sync.Mutex
	runs    int
	block   chan struct{}
	started chan struct{}
}

func (s *stubPipeline) Run(ctx context.Context) (*domain.AnalysisResult, error) {
	s.mu.Lock()
	s.runs++
	s.mu.Unlock()

	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.block != nil {
		<-s.block
	}

	return &domain.AnalysisResult{RunID: "run123"}, nil
}

func (s *stubPipeline) runCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

func newSyncService(stub *stubPipeline, enabled bool) *PipelineSyncService {
	return NewPipelineSyncService(stub, &config.Config{
		PipelineSync: config.PipelineSync{
			CronSchedule: "0 2 * * *",
			Enabled:      enabled,
		},
	})
}

func TestPipelineSyncService_StartDisabledDoesNotSchedule(t *testing.T) {
	stub := &stubPipeline{}
	service := newSyncService(stub, false)

	err := service.Start(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, stub.runCount())
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestPipelineSyncService_ManualTriggerRunsOnce(t *testing.T) {
	stub := &stubPipeline{started: make(chan struct{}, 1)}
	service := newSyncService(stub, true)

	service.TriggerManualSync(context.Background())

	select {
	case <-stub.started:
	case <-time.After(2 * time.Second):
		t.Fatal("a execução manual não iniciou")
	}

	require.Eventually(t, func() bool {
		service.syncMutex.Lock()
		defer service.syncMutex.Unlock()
		return !service.syncRunning
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, 1, stub.runCount())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestPipelineSyncService_OverlappingRunIsIgnored(t *testing.T) {
	stub := &stubPipeline{
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	service := newSyncService(stub, true)

	// Primeira execução fica presa dentro do pipeline
	go service.runPipeline(context.Background())
	<-stub.started

	// Consulta de status durante a execução: lê os campos que a
	// goroutine do cron escreve, então precisa ser segura aqui
	status := service.GetStatus()
	assert.Equal(t, true, status["sync_running"])
	assert.NotEqual(t, time.Time{}, status["last_sync_started_at"])

	// Segundo disparo deve ser ignorado enquanto a primeira roda
	service.runPipeline(context.Background())
	assert.Equal(t, 1, stub.runCount())

	close(stub.block)

	require.Eventually(t, func() bool {
		service.syncMutex.Lock()
		defer service.syncMutex.Unlock()
		return !service.syncRunning
	}, 2*time.Second, 10*time.Millisecond)

	status = service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.NotEqual(t, time.Time{}, status["last_sync_completed_at"])
}

func TestPipelineSyncService_InvalidCronFailsOnStart(t *testing.T) {
	stub := &stubPipeline{}
	service := NewPipelineSyncService(stub, &config.Config{
		PipelineSync: config.PipelineSync{
			CronSchedule: "não é cron",
			Enabled:      true,
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)
	assert.Error(t, err)
}
