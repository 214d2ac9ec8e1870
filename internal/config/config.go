package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Redis       Redis       `mapstructure:",squash"`
	Facebook    Facebook    `mapstructure:",squash"`
	Google      Google      `mapstructure:",squash"`
	TikTok      TikTok      `mapstructure:",squash"`
	AdStateSync AdStateSync `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	// URL vazia desabilita o lock distribuído de sincronização.
	URL            string `mapstructure:"redis_url"`
	LockTTLSeconds int    `mapstructure:"redis_lock_ttl_seconds"`
}

type Facebook struct {
	BaseURL   string `mapstructure:"facebook_base_url"`
	Version   string `mapstructure:"facebook_version"`
	URL       string `mapstructure:"-"`
	AppID     string `mapstructure:"facebook_app_id"`
	AppSecret string `mapstructure:"facebook_app_secret"`
}

type Google struct {
	BaseURL        string `mapstructure:"google_base_url"`
	OAuthTokenURL  string `mapstructure:"google_oauth_token_url"`
	Version        string `mapstructure:"google_version"`
	URL            string `mapstructure:"-"`
	ClientID       string `mapstructure:"google_client_id"`
	ClientSecret   string `mapstructure:"google_client_secret"`
	DeveloperToken string `mapstructure:"google_developer_token"`
}

type TikTok struct {
	BaseURL string `mapstructure:"tiktok_base_url"`
	Version string `mapstructure:"tiktok_version"`
	URL     string `mapstructure:"-"`
	AppID   string `mapstructure:"tiktok_app_id"`
	Secret  string `mapstructure:"tiktok_app_secret"`
}

type AdStateSync struct {
	CronSchedule          string `mapstructure:"ad_state_sync_cron"`
	MaxConcurrentAccounts int    `mapstructure:"ad_state_sync_max_concurrent_accounts"`
	CooldownSeconds       int    `mapstructure:"ad_state_sync_cooldown_seconds"`
	RequestTimeoutSeconds int    `mapstructure:"ad_state_sync_request_timeout_seconds"`
	Enabled               bool   `mapstructure:"ad_state_sync_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ad_state")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_LOCK_TTL_SECONDS", 1800)

	viper.SetDefault("FACEBOOK_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("FACEBOOK_VERSION", "v18.0")
	viper.SetDefault("FACEBOOK_APP_ID", "your_app_id")
	viper.SetDefault("FACEBOOK_APP_SECRET", "your_app_secret")

	viper.SetDefault("GOOGLE_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_VERSION", "v18")
	viper.SetDefault("GOOGLE_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_DEVELOPER_TOKEN", "your_developer_token")

	viper.SetDefault("TIKTOK_BASE_URL", "https://business-api.tiktok.com/open_api")
	viper.SetDefault("TIKTOK_VERSION", "v1.3")
	viper.SetDefault("TIKTOK_APP_ID", "your_app_id")
	viper.SetDefault("TIKTOK_APP_SECRET", "your_app_secret")

	// Defaults para sincronização de estado de anúncios
	viper.SetDefault("AD_STATE_SYNC_CRON", "0 */4 * * *")            // A cada 4 horas
	viper.SetDefault("AD_STATE_SYNC_MAX_CONCURRENT_ACCOUNTS", 10)    // 10 contas concorrentes
	viper.SetDefault("AD_STATE_SYNC_COOLDOWN_SECONDS", 2)            // 2 segundos entre contas no mesmo worker
	viper.SetDefault("AD_STATE_SYNC_REQUEST_TIMEOUT_SECONDS", 30)    // Timeout por requisição HTTP
	viper.SetDefault("AD_STATE_SYNC_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Facebook.URL = fmt.Sprintf("%s/%s", config.Facebook.BaseURL, config.Facebook.Version)
	config.Google.URL = fmt.Sprintf("%s/%s", config.Google.BaseURL, config.Google.Version)
	config.TikTok.URL = fmt.Sprintf("%s/%s", config.TikTok.BaseURL, config.TikTok.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
