package syncer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ad-state-sync/infrastructure/repository"
	"github.com/vfg2006/ad-state-sync/internal/domain"
)

const defaultMaxConcurrentAccounts = 10

// Coordinator distribui as contas entre workers limitados por semáforo e
// agrega os resultados. Falha de uma conta nunca afeta as demais.
type Coordinator struct {
	orchestrator    *Orchestrator
	auditRepo       repository.AuditRepository
	maxConcurrent   int
	cooldownSeconds int
}

func NewCoordinator(
	orchestrator *Orchestrator,
	auditRepo repository.AuditRepository,
	maxConcurrent int,
	cooldownSeconds int,
) *Coordinator {
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentAccounts
	}

	return &Coordinator{
		orchestrator:    orchestrator,
		auditRepo:       auditRepo,
		maxConcurrent:   maxConcurrent,
		cooldownSeconds: cooldownSeconds,
	}
}

// Run processa todas as contas e retorna o sumário agregado. O método só
// retorna quando todos os workers terminam.
func (c *Coordinator) Run(ctx context.Context, accounts []*domain.AdsAccount) domain.SyncSummary {
	summary := domain.SyncSummary{
		Total:     len(accounts),
		StartedAt: time.Now().UTC(),
	}

	if c.orchestrator != nil && c.orchestrator.metrics != nil {
		c.orchestrator.metrics.FleetRuns.Inc()
	}

	if len(accounts) == 0 {
		summary.CompletedAt = time.Now().UTC()
		return summary
	}

	logrus.WithFields(logrus.Fields{
		"accounts":       len(accounts),
		"max_concurrent": c.maxConcurrent,
	}).Info("sync: starting fleet pass")

	semaphore := make(chan struct{}, c.maxConcurrent)
	var wg sync.WaitGroup

	outcomes := make([]domain.SyncOutcome, len(accounts))

	for i, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(idx int, acc *domain.AdsAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			outcomes[idx] = c.syncWithAudit(ctx, acc)

			// Pausa dentro do worker para não martelar as APIs quando o
			// semáforo libera a próxima conta imediatamente.
			if c.cooldownSeconds > 0 {
				time.Sleep(time.Duration(c.cooldownSeconds) * time.Second)
			}
		}(i, account)
	}

	wg.Wait()

	for i := range outcomes {
		if outcomes[i].Succeeded() {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	summary.CompletedAt = time.Now().UTC()

	logrus.WithFields(logrus.Fields{
		"total":     summary.Total,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
		"duration":  summary.CompletedAt.Sub(summary.StartedAt).String(),
	}).Info("sync: fleet pass completed")

	return summary
}

func (c *Coordinator) syncWithAudit(ctx context.Context, account *domain.AdsAccount) domain.SyncOutcome {
	outcome := c.orchestrator.SyncOne(ctx, account)

	if outcome.Succeeded() {
		logrus.WithFields(logrus.Fields{
			"account_id":      outcome.AccountID,
			"platform":        outcome.Platform,
			"records_written": outcome.RecordsWritten,
			"upsert_failures": outcome.UpsertFailures,
			"duration":        outcome.Duration.String(),
		}).Info("sync: account synchronized")
	} else {
		logrus.WithFields(logrus.Fields{
			"account_id": outcome.AccountID,
			"platform":   outcome.Platform,
			"duration":   outcome.Duration.String(),
		}).WithError(outcome.Err).Error("sync: account synchronization failed")
	}

	c.recordAudit(&outcome)

	return outcome
}

// recordAudit grava o evento de auditoria da conta. Falha aqui é apenas
// logada: auditoria nunca derruba a sincronização.
func (c *Coordinator) recordAudit(outcome *domain.SyncOutcome) {
	if c.auditRepo == nil {
		return
	}

	status := domain.AuditStatusSuccess
	remark := ""
	if !outcome.Succeeded() {
		status = domain.AuditStatusFailure
		remark = outcome.Err.Error()
	}

	event := &domain.AuditEvent{
		Project:    string(outcome.Platform),
		ActionType: domain.AuditActionTypeSync,
		Action:     domain.AuditActionAccountSync,
		AccountID:  outcome.AccountID,
		Status:     status,
		DurationMS: outcome.Duration.Milliseconds(),
		Remark:     remark,
		CreatedAt:  time.Now().UTC(),
	}

	if err := c.auditRepo.Record(event); err != nil {
		logrus.WithField("account_id", outcome.AccountID).
			WithError(err).
			Error("sync: failed to record audit event")
	}
}
