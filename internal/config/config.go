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

// Drivers de armazenamento suportados
const (
	StorageMemory   = "memory"
	StorageBadger   = "badger"
	StoragePostgres = "postgres"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Storage   Storage   `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Gemini    Gemini    `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Retention Retention `mapstructure:",squash"`
	CORS      CORS      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Storage struct {
	Driver     string `mapstructure:"storage_driver"`
	Key        string `mapstructure:"storage_key"`
	BadgerPath string `mapstructure:"badger_path"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Gemini struct {
	APIKey            string        `mapstructure:"gemini_api_key"`
	BaseURL           string        `mapstructure:"gemini_base_url"`
	Model             string        `mapstructure:"gemini_model"`
	TimeoutSeconds    int           `mapstructure:"gemini_timeout_seconds"`
	RequestsPerMinute int           `mapstructure:"gemini_requests_per_minute"`
	Timeout           time.Duration `mapstructure:"-"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	PasswordHash  string        `mapstructure:"auth_password_hash"`
	TokenTTLHours int           `mapstructure:"auth_token_ttl_hours"`
	TokenTTL      time.Duration `mapstructure:"-"`
}

type Retention struct {
	CronSchedule string `mapstructure:"retention_cron"`
	Months       int    `mapstructure:"retention_months"`
	Enabled      bool   `mapstructure:"retention_enabled"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	// Badger embarcado persiste entre reinícios; memory fica para testes
	viper.SetDefault("STORAGE_DRIVER", StorageBadger)
	viper.SetDefault("STORAGE_KEY", "protrack_monthly_data")
	viper.SetDefault("BADGER_PATH", "./data/badger")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/protrack?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("GEMINI_TIMEOUT_SECONDS", 30)
	viper.SetDefault("GEMINI_REQUESTS_PER_MINUTE", 30)

	// Sem AUTH_SECRET a API fica aberta
	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	viper.SetDefault("RETENTION_CRON", "0 2 1 * *") // No primeiro dia de cada mês às 2h da manhã
	viper.SetDefault("RETENTION_MONTHS", 24)
	viper.SetDefault("RETENTION_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
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

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize preenche os campos derivados e valida combinações inválidas
func (c *Config) normalize() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case StorageMemory, StorageBadger, StoragePostgres:
	default:
		return fmt.Errorf("STORAGE_DRIVER inválido: %q", c.Storage.Driver)
	}

	if strings.TrimSpace(c.Storage.Key) == "" {
		return fmt.Errorf("STORAGE_KEY não pode ser vazio")
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	if c.Gemini.TimeoutSeconds <= 0 {
		c.Gemini.TimeoutSeconds = 30
	}
	c.Gemini.Timeout = time.Duration(c.Gemini.TimeoutSeconds) * time.Second

	if c.Auth.TokenTTLHours <= 0 {
		c.Auth.TokenTTLHours = 24
	}
	c.Auth.TokenTTL = time.Duration(c.Auth.TokenTTLHours) * time.Hour

	if c.Retention.Months <= 0 {
		c.Retention.Enabled = false
	}

	origins := make([]string, 0, len(c.CORS.AllowedOrigins))
	for _, origin := range c.CORS.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.CORS.AllowedOrigins = origins

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
