package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ad-state-sync/internal/config"
	"github.com/vfg2006/ad-state-sync/internal/syncer"
)

// AdStateSyncConfig representa a configuração do agendador de sincronização
// de estado de anúncios
type AdStateSyncConfig struct {
	CronSchedule          string
	MaxConcurrentAccounts int
	CooldownSeconds       int
	SyncEnabled           bool
}

// AdStateSyncService gerencia o agendamento e execução da sincronização de
// estado de anúncios de todas as plataformas
type AdStateSyncService struct {
	scheduler           *gocron.Scheduler
	config              AdStateSyncConfig
	syncService         syncer.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAdStateSyncService cria uma nova instância do serviço de sincronização
func NewAdStateSyncService(syncService syncer.Service, appConfig *config.Config) *AdStateSyncService {
	syncConfig := AdStateSyncConfig{
		CronSchedule:          appConfig.AdStateSync.CronSchedule,
		MaxConcurrentAccounts: appConfig.AdStateSync.MaxConcurrentAccounts,
		CooldownSeconds:       appConfig.AdStateSync.CooldownSeconds,
		SyncEnabled:           appConfig.AdStateSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":           syncConfig.CronSchedule,
		"max_concurrent_accounts": syncConfig.MaxConcurrentAccounts,
		"cooldown_seconds":        syncConfig.CooldownSeconds,
		"sync_enabled":            syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de estado de anúncios carregada")

	return &AdStateSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		syncService: syncService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *AdStateSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de estado de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de estado de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAdStates(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de estado de anúncios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de estado de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAdStates roda uma passada completa da frota, garantindo uma única
// execução por vez nesta instância
func (s *AdStateSyncService) syncAllAdStates(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de estado de anúncios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de estado de anúncios para todas as contas ativas")

	summary, err := s.syncService.SyncAllAccountStates(ctx)
	if err != nil {
		if err == syncer.ErrFleetRunLocked {
			logrus.Info("Sincronização de estado de anúncios em andamento em outra instância, ignorando")
			return
		}
		logrus.WithError(err).Error("Erro durante a sincronização de estado de anúncios")
		return
	}

	logrus.WithFields(logrus.Fields{
		"total":     summary.Total,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
		"duration":  summary.CompletedAt.Sub(summary.StartedAt).String(),
	}).Info("Sincronização de estado de anúncios concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma passada completa da frota
func (s *AdStateSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de estado de anúncios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de estado de anúncios")
	go s.syncAllAdStates(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *AdStateSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentAccounts,
		"sync_cooldown_seconds":  s.config.CooldownSeconds,
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
