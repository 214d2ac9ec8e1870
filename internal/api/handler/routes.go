package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vfg2006/ad-state-sync/infrastructure/repository"
	"github.com/vfg2006/ad-state-sync/internal/api/handler/router"
	"github.com/vfg2006/ad-state-sync/internal/scheduler"
	"github.com/vfg2006/ad-state-sync/internal/syncer"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Sync(service syncer.Service, syncScheduler *scheduler.AdStateSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/run",
			Method:  http.MethodPost,
			Handler: RunFleetSync(syncScheduler),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(syncScheduler),
		},
		{
			Path:    "/v1/accounts/:id/sync",
			Method:  http.MethodPost,
			Handler: SyncAccount(service),
		},
	}
}

func Accounts(accountRepo repository.AccountRepository, adStateRepo repository.AdStateRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: ListAccounts(accountRepo),
		},
		{
			Path:    "/v1/accounts/:id/states",
			Method:  http.MethodGet,
			Handler: GetAccountStates(accountRepo, adStateRepo),
		},
	}
}
