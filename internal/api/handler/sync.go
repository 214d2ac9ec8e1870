package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ad-state-sync/infrastructure/integrator"
	"github.com/vfg2006/ad-state-sync/internal/scheduler"
	"github.com/vfg2006/ad-state-sync/internal/syncer"
	"github.com/vfg2006/ad-state-sync/pkg/apiErrors"
)

// RunFleetSync dispara manualmente uma passada completa da frota. A execução é
// assíncrona: a resposta confirma apenas o agendamento.
func RunFleetSync(syncScheduler *scheduler.AdStateSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunFleetSync")

		if syncScheduler == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		syncScheduler.TriggerManualSync(r.Context())

		w.WriteHeader(http.StatusAccepted)
		response := map[string]any{
			"message": "Sincronização de estado de anúncios iniciada",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetSyncStatus retorna o status atual do agendador de sincronização.
func GetSyncStatus(syncScheduler *scheduler.AdStateSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSyncStatus")

		if syncScheduler == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		json.NewEncoder(w).Encode(syncScheduler.GetStatus())
	}
}

// SyncAccount sincroniza uma única conta de forma síncrona e devolve o
// resultado na resposta.
func SyncAccount(service syncer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncAccount")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não especificado", nil)
			return
		}

		outcome, err := service.SyncAccountByID(r.Context(), accountID)
		if err != nil {
			if err == syncer.ErrAccountNotFound {
				apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta", err.Error())
			return
		}

		response := map[string]any{
			"account_id":      outcome.AccountID,
			"platform":        outcome.Platform,
			"records_written": outcome.RecordsWritten,
			"upsert_failures": outcome.UpsertFailures,
			"duration_ms":     outcome.Duration.Milliseconds(),
			"succeeded":       outcome.Succeeded(),
		}

		if !outcome.Succeeded() {
			response["error"] = outcome.Err.Error()
			w.WriteHeader(syncFailureStatus(outcome.Err))
		}

		json.NewEncoder(w).Encode(response)
	}
}

// syncFailureStatus mapeia a taxonomia de erros de sincronização para status
// HTTP da API de gerência.
func syncFailureStatus(err error) int {
	switch err.(type) {
	case *integrator.ConfigurationError:
		return http.StatusUnprocessableEntity
	case *integrator.AuthError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
