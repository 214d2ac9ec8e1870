package syncer

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ad-state-sync/infrastructure/integrator"
	"github.com/vfg2006/ad-state-sync/infrastructure/repository"
	"github.com/vfg2006/ad-state-sync/internal/domain"
	"github.com/vfg2006/ad-state-sync/internal/observability"
)

// Orchestrator executa a sincronização completa de uma única conta: valida,
// busca a árvore inteira pela plataforma e grava registro a registro. A busca
// é atômica por conta (falha descarta tudo); a gravação é tolerante a falhas
// individuais.
type Orchestrator struct {
	registry    *integrator.Registry
	accountRepo repository.AccountRepository
	adStateRepo repository.AdStateRepository
	metrics     *observability.Metrics
}

func NewOrchestrator(
	registry *integrator.Registry,
	accountRepo repository.AccountRepository,
	adStateRepo repository.AdStateRepository,
	metrics *observability.Metrics,
) *Orchestrator {
	return &Orchestrator{
		registry:    registry,
		accountRepo: accountRepo,
		adStateRepo: adStateRepo,
		metrics:     metrics,
	}
}

// SyncOne processa uma conta de ponta a ponta e devolve o resultado. Nunca
// entra em pânico: todo caminho de falha vira Err no SyncOutcome.
func (o *Orchestrator) SyncOne(ctx context.Context, account *domain.AdsAccount) domain.SyncOutcome {
	startedAt := time.Now()

	outcome := domain.SyncOutcome{
		AccountID: account.ID,
		Platform:  account.Platform,
	}

	outcome.Err = o.syncAccount(ctx, account, &outcome)
	outcome.Duration = time.Since(startedAt)

	o.observe(&outcome)
	o.writeBack(account, &outcome)

	return outcome
}

func (o *Orchestrator) syncAccount(ctx context.Context, account *domain.AdsAccount, outcome *domain.SyncOutcome) error {
	if err := o.checkAccount(account); err != nil {
		return err
	}

	adapter, ok := o.registry.ForPlatform(account.Platform)
	if !ok {
		return &integrator.ConfigurationError{
			AccountID: account.ID,
			Reason:    "plataforma sem adapter registrado: " + string(account.Platform),
		}
	}

	if err := adapter.ValidateCredentials(ctx, account); err != nil {
		return err
	}

	states, err := adapter.FetchAll(ctx, account)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"platform":   account.Platform,
		"ad_states":  len(states),
	}).Info("sync: fetched normalized ad states for account")

	for _, state := range states {
		if err := o.adStateRepo.Upsert(state); err != nil {
			outcome.UpsertFailures++

			persistErr := &integrator.PersistenceError{Key: state.Key(), Err: err}
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"platform":    account.Platform,
				"campaign_id": state.CampaignID,
				"adset_id":    state.AdsetID,
				"ad_id":       state.AdID,
			}).WithError(persistErr).Error("sync: failed to upsert ad state record")
			continue
		}

		outcome.RecordsWritten++
	}

	return nil
}

// checkAccount valida pré-condições locais antes de qualquer chamada de rede.
func (o *Orchestrator) checkAccount(account *domain.AdsAccount) error {
	if account.Status != domain.AdsAccountStatusActive {
		return &integrator.ConfigurationError{
			AccountID: account.ID,
			Reason:    "conta não está ativa: " + string(account.Status),
		}
	}

	if !account.Platform.Valid() {
		return &integrator.ConfigurationError{
			AccountID: account.ID,
			Reason:    "plataforma desconhecida: " + string(account.Platform),
		}
	}

	if account.NativeID == "" {
		return &integrator.ConfigurationError{
			AccountID: account.ID,
			Reason:    "conta sem identificador nativo da plataforma",
		}
	}

	if account.Credentials.Empty() {
		return &integrator.ConfigurationError{
			AccountID: account.ID,
			Reason:    "conta sem credenciais configuradas",
		}
	}

	return nil
}

func (o *Orchestrator) observe(outcome *domain.SyncOutcome) {
	if o.metrics == nil {
		return
	}

	platform := string(outcome.Platform)

	result := observability.OutcomeSuccess
	if !outcome.Succeeded() {
		result = observability.OutcomeFailure
	}

	o.metrics.AccountSyncs.WithLabelValues(platform, result).Inc()
	o.metrics.RecordsWritten.WithLabelValues(platform).Add(float64(outcome.RecordsWritten))
	o.metrics.UpsertFailures.WithLabelValues(platform).Add(float64(outcome.UpsertFailures))
	o.metrics.SyncDuration.WithLabelValues(platform).Observe(outcome.Duration.Seconds())
}

// writeBack atualiza o estado da conta conforme o resultado. Falha de escrita
// aqui é logada mas não sobrescreve o resultado da sincronização.
func (o *Orchestrator) writeBack(account *domain.AdsAccount, outcome *domain.SyncOutcome) {
	now := time.Now().UTC()

	if outcome.Succeeded() {
		if err := o.accountRepo.MarkSyncSuccess(account.ID, now); err != nil {
			logrus.WithField("account_id", account.ID).
				WithError(err).
				Error("sync: failed to mark account sync success")
		}
		return
	}

	// Erro de configuração não altera a conta: não há o que invalidar.
	if _, ok := outcome.Err.(*integrator.ConfigurationError); ok {
		return
	}

	if err := o.accountRepo.MarkSyncError(account.ID, outcome.Err.Error(), now); err != nil {
		logrus.WithField("account_id", account.ID).
			WithError(err).
			Error("sync: failed to mark account sync error")
	}
}
