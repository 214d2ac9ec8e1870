package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ad-state-sync/infrastructure/repository"
	"github.com/vfg2006/ad-state-sync/internal/domain"
	"github.com/vfg2006/ad-state-sync/pkg/apiErrors"
)

// ListAccounts retorna as contas cadastradas, com filtro opcional por status.
// Credenciais nunca são expostas na resposta.
func ListAccounts(accountRepo repository.AccountRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListAccounts")

		var statusFilter []domain.AdsAccountStatus
		if status := r.URL.Query().Get("status"); status != "" {
			statusFilter = append(statusFilter, domain.AdsAccountStatus(status))
		}

		accounts, err := accountRepo.ListAccounts(statusFilter)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar contas", err.Error())
			return
		}

		response := make([]*domain.AdsAccountResponse, 0, len(accounts))
		for _, account := range accounts {
			response = append(response, &domain.AdsAccountResponse{
				ID:           account.ID,
				Platform:     account.Platform,
				NativeID:     account.NativeID,
				Name:         account.Name,
				Status:       account.Status,
				HasToken:     !account.Credentials.Empty(),
				LastError:    account.LastError,
				LastSyncedAt: account.LastSyncedAt,
			})
		}

		json.NewEncoder(w).Encode(response)
	}
}

// GetAccountStates retorna os registros AdState persistidos de uma conta.
func GetAccountStates(accountRepo repository.AccountRepository, adStateRepo repository.AdStateRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAccountStates")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não especificado", nil)
			return
		}

		account, err := accountRepo.GetAccountByID(accountID)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta", err.Error())
			return
		}
		if account == nil {
			apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)
			return
		}

		states, err := adStateRepo.ListByAccount(account.Platform, account.ID)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar estados de anúncios", err.Error())
			return
		}

		json.NewEncoder(w).Encode(states)
	}
}
