package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ad-state-sync/internal/domain"
)

// stubSyncService simula uma passada de frota com duração controlada.
type stubSyncService struct {
	delay time.Duration

	mu    sync.Mutex
	calls int
}

func (s *stubSyncService) SyncAllAccountStates(ctx context.Context) (domain.SyncSummary, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	time.Sleep(s.delay)

	now := time.Now().UTC()
	return domain.SyncSummary{Total: 1, Succeeded: 1, StartedAt: now, CompletedAt: now}, nil
}

func (s *stubSyncService) SyncAccountByID(ctx context.Context, accountID string) (domain.SyncOutcome, error) {
	return domain.SyncOutcome{AccountID: accountID}, nil
}

func newTestScheduler(syncService *stubSyncService) *AdStateSyncService {
	return &AdStateSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      AdStateSyncConfig{SyncEnabled: true, CronSchedule: "0 */4 * * *"},
		syncService: syncService,
	}
}

func TestAdStateSyncService_GetStatusDuranteSincronizacao(t *testing.T) {
	syncService := &stubSyncService{delay: 50 * time.Millisecond}
	service := newTestScheduler(syncService)

	service.TriggerManualSync(context.Background())

	// Consultas concorrentes enquanto a passada roda: os timestamps e a flag
	// de execução são lidos sob o mesmo mutex que as escritas
	deadline := time.Now().Add(2 * time.Second)
	sawRunning := false
	for time.Now().Before(deadline) {
		status := service.GetStatus()
		if status["sync_running"].(bool) {
			sawRunning = true
		} else if sawRunning {
			break
		}
		time.Sleep(time.Millisecond)
	}

	require.True(t, sawRunning, "a sincronização deveria ter sido observada em execução")

	status := service.GetStatus()
	assert.False(t, status["sync_running"].(bool))

	startedAt := status["last_sync_started_at"].(time.Time)
	completedAt := status["last_sync_completed_at"].(time.Time)
	assert.False(t, startedAt.IsZero())
	assert.False(t, completedAt.IsZero())
	assert.False(t, completedAt.Before(startedAt))
}

func TestAdStateSyncService_DisparoManualNaoDuplicaExecucao(t *testing.T) {
	syncService := &stubSyncService{delay: 100 * time.Millisecond}
	service := newTestScheduler(syncService)

	service.TriggerManualSync(context.Background())

	// Espera a primeira passada começar antes do segundo disparo
	for i := 0; i < 100; i++ {
		if service.GetStatus()["sync_running"].(bool) {
			break
		}
		time.Sleep(time.Millisecond)
	}

	service.TriggerManualSync(context.Background())

	for i := 0; i < 200; i++ {
		if !service.GetStatus()["sync_running"].(bool) {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	syncService.mu.Lock()
	calls := syncService.calls
	syncService.mu.Unlock()

	assert.Equal(t, 1, calls)
}
