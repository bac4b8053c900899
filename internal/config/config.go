package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// PlaceholderSecret é o valor de exemplo da documentação, nunca aceito como chave
const PlaceholderSecret = "change-me"

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Backend   Backend   `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Cache     Cache     `mapstructure:",squash"`
	Campaigns Campaigns `mapstructure:",squash"`
	Meta      Meta      `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	// PublicOrigin é a origem vista pelo navegador (ex.: http://localhost:8000)
	PublicOrigin   string   `mapstructure:"public_origin"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Backend struct {
	BaseURL string        `mapstructure:"backend_base_url"`
	Timeout time.Duration `mapstructure:"backend_timeout"`
}

type Database struct {
	Driver string `mapstructure:"database_driver"`
	DSN    string `mapstructure:"database_dsn"`
}

type Cache struct {
	DefaultTTL   time.Duration `mapstructure:"cache_default_ttl"`
	CleanupEvery time.Duration `mapstructure:"cache_cleanup_every"`
	Enabled      bool          `mapstructure:"cache_cleanup_enabled"`
}

type Campaigns struct {
	FreshnessWindow       time.Duration `mapstructure:"campaigns_freshness_window"`
	MaxConcurrentAccounts int           `mapstructure:"campaigns_max_concurrent_accounts"`
}

type Meta struct {
	CallbackPath      string        `mapstructure:"meta_callback_path"`
	OAuthTimeout      time.Duration `mapstructure:"meta_oauth_timeout"`
	PopupPollInterval time.Duration `mapstructure:"meta_popup_poll_interval"`
	StatusCacheTTL    time.Duration `mapstructure:"meta_status_cache_ttl"`
	SyncDelay         time.Duration `mapstructure:"meta_sync_delay"`
}

// RedirectURI retorna a URI de callback do OAuth registrada no backend
func (c *Config) RedirectURI() string {
	return strings.TrimRight(c.Server.PublicOrigin, "/") + c.Meta.CallbackPath
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("PUBLIC_ORIGIN", "http://localhost:8000")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:8000,http://localhost:5173")

	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:3001/api")
	viper.SetDefault("BACKEND_TIMEOUT", "30s")

	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "file:console.db?_pragma=busy_timeout(5000)")

	viper.SetDefault("CACHE_DEFAULT_TTL", "5m")
	viper.SetDefault("CACHE_CLEANUP_EVERY", "60s")
	viper.SetDefault("CACHE_CLEANUP_ENABLED", true)

	viper.SetDefault("CAMPAIGNS_FRESHNESS_WINDOW", "30s")
	viper.SetDefault("CAMPAIGNS_MAX_CONCURRENT_ACCOUNTS", 4)

	viper.SetDefault("META_CALLBACK_PATH", "/oauth/meta/callback")
	viper.SetDefault("META_OAUTH_TIMEOUT", "5m")
	viper.SetDefault("META_POPUP_POLL_INTERVAL", "1s")
	viper.SetDefault("META_STATUS_CACHE_TTL", "5m")
	viper.SetDefault("META_SYNC_DELAY", "1s")

	// sem default: a chave precisa vir do ambiente ou do .env
	_ = viper.BindEnv("SECRET_KEY")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("database driver não suportado: %q", c.Database.Driver)
	}

	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL é obrigatório")
	}

	if !strings.HasPrefix(c.Meta.CallbackPath, "/") {
		return fmt.Errorf("META_CALLBACK_PATH deve começar com '/'")
	}

	switch strings.TrimSpace(c.SecretKey) {
	case "":
		return fmt.Errorf("SECRET_KEY é obrigatório")
	case PlaceholderSecret:
		return fmt.Errorf("SECRET_KEY não pode ser o valor de exemplo %q", PlaceholderSecret)
	}

	return nil
}

// loadEnvFile procura um .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
