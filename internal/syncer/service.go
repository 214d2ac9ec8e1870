package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ad-state-sync/infrastructure/repository"
	"github.com/vfg2006/ad-state-sync/internal/domain"
	"github.com/vfg2006/ad-state-sync/internal/syncer/runlock"
)

var (
	ErrAccountNotFound = errors.New("conta não encontrada")
	ErrFleetRunLocked  = errors.New("outra passada de sincronização já está em andamento")
)

// Service é a fachada do núcleo de sincronização usada pelo agendador e pela
// API de gerência.
type Service interface {
	// SyncAllAccountStates roda uma passada completa sobre as contas ativas.
	SyncAllAccountStates(ctx context.Context) (domain.SyncSummary, error)

	// SyncAccountByID sincroniza uma única conta de forma síncrona, para
	// disparo manual via API. Diferente da passada de frota, inclui contas
	// em estado de erro, permitindo retentativa após correção de token.
	SyncAccountByID(ctx context.Context, accountID string) (domain.SyncOutcome, error)
}

type service struct {
	orchestrator *Orchestrator
	coordinator  *Coordinator
	accountRepo  repository.AccountRepository
	auditRepo    repository.AuditRepository
	locker       runlock.Locker
}

func NewService(
	orchestrator *Orchestrator,
	coordinator *Coordinator,
	accountRepo repository.AccountRepository,
	auditRepo repository.AuditRepository,
	locker runlock.Locker,
) Service {
	return &service{
		orchestrator: orchestrator,
		coordinator:  coordinator,
		accountRepo:  accountRepo,
		auditRepo:    auditRepo,
		locker:       locker,
	}
}

func (s *service) SyncAllAccountStates(ctx context.Context) (domain.SyncSummary, error) {
	acquired, err := s.locker.Acquire(ctx)
	if err != nil {
		return domain.SyncSummary{}, errors.Wrap(err, "erro ao adquirir o lock de sincronização")
	}
	if !acquired {
		return domain.SyncSummary{}, ErrFleetRunLocked
	}
	defer func() {
		if err := s.locker.Release(ctx); err != nil {
			logrus.WithError(err).Error("sync: failed to release fleet run lock")
		}
	}()

	accounts, err := s.accountRepo.ListAccounts([]domain.AdsAccountStatus{domain.AdsAccountStatusActive})
	if err != nil {
		return domain.SyncSummary{}, errors.Wrap(err, "erro ao listar contas ativas")
	}

	summary := s.coordinator.Run(ctx, accounts)
	s.recordFleetAudit(&summary)

	return summary, nil
}

func (s *service) SyncAccountByID(ctx context.Context, accountID string) (domain.SyncOutcome, error) {
	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		return domain.SyncOutcome{}, errors.Wrap(err, "erro ao buscar conta")
	}
	if account == nil {
		return domain.SyncOutcome{}, ErrAccountNotFound
	}

	// Disparo manual reprocessa contas em erro: trata como ativa para esta
	// passada única sem alterar o status persistido antes do resultado.
	if account.Status == domain.AdsAccountStatusError {
		account.Status = domain.AdsAccountStatusActive
	}

	outcome := s.orchestrator.SyncOne(ctx, account)

	return outcome, nil
}

func (s *service) recordFleetAudit(summary *domain.SyncSummary) {
	if s.auditRepo == nil {
		return
	}

	status := domain.AuditStatusSuccess
	if summary.Failed > 0 {
		status = domain.AuditStatusFailure
	}

	event := &domain.AuditEvent{
		Project:    "all",
		ActionType: domain.AuditActionTypeSync,
		Action:     domain.AuditActionFleetSync,
		Status:     status,
		DurationMS: summary.CompletedAt.Sub(summary.StartedAt).Milliseconds(),
		Remark:     fleetRemark(summary),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.auditRepo.Record(event); err != nil {
		logrus.WithError(err).Error("sync: failed to record fleet audit event")
	}
}

func fleetRemark(summary *domain.SyncSummary) string {
	return fmt.Sprintf(
		"total=%d succeeded=%d failed=%d",
		summary.Total, summary.Succeeded, summary.Failed,
	)
}
