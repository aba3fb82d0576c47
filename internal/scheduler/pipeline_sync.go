package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/finance-insights/internal/config"
	"github.com/vfg2006/finance-insights/internal/usecases/pipeline"
)

// PipelineSyncService agenda a reexecução periódica do pipeline de
// análise. Cada disparo reprocessa o snapshot completo dos arquivos de
// origem; execuções sobrepostas são ignoradas, não enfileiradas.
type PipelineSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.PipelineSync
	pipeline            pipeline.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewPipelineSyncService(
	pipelineService pipeline.Service,
	appConfig *config.Config,
) *PipelineSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.PipelineSync.CronSchedule,
		"sync_enabled":  appConfig.PipelineSync.Enabled,
	}).Info("Configuração do agendador do pipeline carregada")

	return &PipelineSyncService{
		scheduler:   scheduler,
		config:      appConfig.PipelineSync,
		pipeline:    pipelineService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *PipelineSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Reexecução periódica do pipeline desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do pipeline")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runPipeline(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a reexecução do pipeline: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do pipeline")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *PipelineSyncService) runPipeline(ctx context.Context) {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução do pipeline já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando execução agendada do pipeline")

	result, err := s.pipeline.Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na execução agendada do pipeline")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   result.RunID,
		"duration": time.Since(startTime).String(),
	}).Info("Execução agendada do pipeline concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync dispara uma execução fora do cronograma
func (s *PipelineSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução do pipeline já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do pipeline")
	go s.runPipeline(ctx)
}

// GetStatus retorna o status atual do agendador. Os carimbos de tempo
// são escritos pela goroutine do cron, então a leitura também trava.
func (s *PipelineSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
