package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ad-state-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/facebook"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/facebook/fbclient"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/google"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/google/gclient"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/httpfetch"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/tiktok"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/tiktok/tkclient"
	"github.com/vfg2006/ad-state-sync/infrastructure/repository"
	"github.com/vfg2006/ad-state-sync/internal/api"
	"github.com/vfg2006/ad-state-sync/internal/config"
	"github.com/vfg2006/ad-state-sync/internal/domain"
	"github.com/vfg2006/ad-state-sync/internal/observability"
	"github.com/vfg2006/ad-state-sync/internal/scheduler"
	"github.com/vfg2006/ad-state-sync/internal/syncer"
	"github.com/vfg2006/ad-state-sync/internal/syncer/runlock"
)

// Limites de requisições por segundo por plataforma, abaixo dos limites
// publicados das APIs.
const (
	facebookRequestsPerSecond = 5.0
	googleRequestsPerSecond   = 5.0
	tiktokRequestsPerSecond   = 2.0
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	adStateRepo := repository.NewAdStateRepository(pgConn)
	auditRepo := repository.NewAuditRepository(pgConn)

	requestTimeout := time.Duration(cfg.AdStateSync.RequestTimeoutSeconds) * time.Second

	facebookFetcher := httpfetch.New(domain.PlatformFacebook, requestTimeout, facebookRequestsPerSecond)
	googleFetcher := httpfetch.New(domain.PlatformGoogle, requestTimeout, googleRequestsPerSecond)
	tiktokFetcher := httpfetch.New(domain.PlatformTikTok, requestTimeout, tiktokRequestsPerSecond)

	facebookAdapter := facebook.NewAdapter(fbclient.NewClient(cfg.Facebook.URL, facebookFetcher))
	googleAdapter := google.NewAdapter(
		gclient.NewClient(cfg.Google.URL, cfg.Google.OAuthTokenURL, googleFetcher),
		cfg.Google.DeveloperToken,
	)
	tiktokAdapter := tiktok.NewAdapter(tkclient.NewClient(cfg.TikTok.URL, tiktokFetcher))

	registry := integrator.NewRegistry(facebookAdapter, googleAdapter, tiktokAdapter)

	metrics := observability.NewMetrics()

	orchestrator := syncer.NewOrchestrator(registry, accountRepo, adStateRepo, metrics)
	coordinator := syncer.NewCoordinator(
		orchestrator,
		auditRepo,
		cfg.AdStateSync.MaxConcurrentAccounts,
		cfg.AdStateSync.CooldownSeconds,
	)

	locker, err := runlock.NewRedisLocker(cfg.Redis.URL, cfg.Redis.LockTTLSeconds)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o lock de sincronização no Redis")
	}

	syncService := syncer.NewService(orchestrator, coordinator, accountRepo, auditRepo, locker)

	adStateSyncService := scheduler.NewAdStateSyncService(syncService, cfg)
	if err := adStateSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de estado de anúncios")
	} else {
		logrus.Info("Agendador de sincronização de estado de anúncios iniciado com sucesso")
	}

	server, err := api.New(cfg, syncService, adStateSyncService, accountRepo, adStateRepo)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
