package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Redis         Redis         `mapstructure:",squash"`
	ImportWatcher ImportWatcher `mapstructure:",squash"`
	BackupSync    BackupSync    `mapstructure:",squash"`
	HealthDigest  HealthDigest  `mapstructure:",squash"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	AllowedDomain string        `mapstructure:"auth_allowed_domain"`
	MasterEmails  []string      `mapstructure:"auth_master_emails"`
	TokenTTL      time.Duration `mapstructure:"auth_token_ttl"`
}

type Redis struct {
	Enabled   bool          `mapstructure:"redis_enabled"`
	Address   string        `mapstructure:"redis_address"`
	Password  string        `mapstructure:"redis_password"`
	DB        int           `mapstructure:"redis_db"`
	TTL       time.Duration `mapstructure:"redis_ttl"`
	KeyPrefix string        `mapstructure:"redis_key_prefix"`
}

type ImportWatcher struct {
	Enabled      bool          `mapstructure:"import_watcher_enabled"`
	Directory    string        `mapstructure:"import_watcher_directory"`
	ProcessedDir string        `mapstructure:"import_watcher_processed_directory"`
	Debounce     time.Duration `mapstructure:"import_watcher_debounce"`
}

type BackupSync struct {
	CronSchedule string `mapstructure:"backup_sync_cron"`
	Directory    string `mapstructure:"backup_sync_directory"`
	Retain       int    `mapstructure:"backup_sync_retain"`
	Enabled      bool   `mapstructure:"backup_sync_enabled"`
}

type HealthDigest struct {
	CronSchedule      string `mapstructure:"health_digest_cron"`
	LookbackMonths    int    `mapstructure:"health_digest_lookback_months"`
	MaxConcurrentJobs int    `mapstructure:"health_digest_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"health_digest_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/profitability?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ALLOWED_DOMAIN", "@v4company.com")
	viper.SetDefault("AUTH_MASTER_EMAILS", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_ADDRESS", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_TTL", "10m")
	viper.SetDefault("REDIS_KEY_PREFIX", "profitability:")

	viper.SetDefault("IMPORT_WATCHER_ENABLED", false)
	viper.SetDefault("IMPORT_WATCHER_DIRECTORY", "./imports")
	viper.SetDefault("IMPORT_WATCHER_PROCESSED_DIRECTORY", "./imports/processed")
	viper.SetDefault("IMPORT_WATCHER_DEBOUNCE", "2s")

	// Snapshot diário às 2h da manhã
	viper.SetDefault("BACKUP_SYNC_CRON", "0 2 * * *")
	viper.SetDefault("BACKUP_SYNC_DIRECTORY", "./backups")
	viper.SetDefault("BACKUP_SYNC_RETAIN", 30)
	viper.SetDefault("BACKUP_SYNC_ENABLED", false)

	// No primeiro dia de cada mês às 7h
	viper.SetDefault("HEALTH_DIGEST_CRON", "0 7 1 * *")
	viper.SetDefault("HEALTH_DIGEST_LOOKBACK_MONTHS", 1)
	viper.SetDefault("HEALTH_DIGEST_MAX_CONCURRENT_JOBS", 4)
	viper.SetDefault("HEALTH_DIGEST_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if config.Database.MaxOpenConns <= 0 {
		config.Database.MaxOpenConns = 10
	}

	config.Auth.MasterEmails = compact(config.Auth.MasterEmails)
	config.App.AllowedOrigins = compact(config.App.AllowedOrigins)

	return config, nil
}

// compact remove entradas vazias geradas pelo split de listas
func compact(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}

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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
