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
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	MetricSourceLive    = "live"
	MetricSourceFixture = "fixture"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
	MetricSource     MetricSource     `mapstructure:",squash"`
	Dashboard        Dashboard        `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
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
	SSLMode      string `mapstructure:"database_sslmode"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret  string `mapstructure:"auth_secret"`
	Enabled bool   `mapstructure:"auth_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// MetricSource define de onde vêm as métricas do dashboard (banco ou dados de demonstração)
type MetricSource struct {
	Kind    string        `mapstructure:"metric_source"`
	Timeout time.Duration `mapstructure:"source_timeout"`
}

type Dashboard struct {
	Timezone             string         `mapstructure:"dashboard_timezone"`
	PeakBucketWidthHours int            `mapstructure:"activity_peak_bucket_width_hours"`
	PeakTop              int            `mapstructure:"activity_peak_top"`
	Location             *time.Location `mapstructure:"-"`
}

type DashboardRefresh struct {
	Enabled         bool `mapstructure:"dashboard_refresh_enabled"`
	IntervalSeconds int  `mapstructure:"dashboard_refresh_interval_seconds"`
	MaxViews        int  `mapstructure:"dashboard_refresh_max_views"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ENABLED", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("METRIC_SOURCE", MetricSourceLive)
	viper.SetDefault("SOURCE_TIMEOUT", "5s")

	viper.SetDefault("DASHBOARD_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("ACTIVITY_PEAK_BUCKET_WIDTH_HOURS", 2) // faixas de 2 horas
	viper.SetDefault("ACTIVITY_PEAK_TOP", 3)                // 3 faixas mais movimentadas

	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", true)
	viper.SetDefault("DASHBOARD_REFRESH_INTERVAL_SECONDS", 60) // atualiza visões montadas a cada minuto
	viper.SetDefault("DASHBOARD_REFRESH_MAX_VIEWS", 100)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

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

// normalize completa os campos derivados e valida os valores lidos
func (c *Config) normalize() error {
	c.MetricSource.Kind = strings.ToLower(strings.TrimSpace(c.MetricSource.Kind))
	switch c.MetricSource.Kind {
	case MetricSourceLive, MetricSourceFixture:
	default:
		return fmt.Errorf("METRIC_SOURCE inválido: %q (use %s ou %s)", c.MetricSource.Kind, MetricSourceLive, MetricSourceFixture)
	}

	if c.MetricSource.Timeout <= 0 {
		c.MetricSource.Timeout = 5 * time.Second
	}

	loc, err := utils.LoadLocation(c.Dashboard.Timezone)
	if err != nil {
		return fmt.Errorf("DASHBOARD_TIMEZONE inválido: %w", err)
	}
	c.Dashboard.Location = loc

	if c.DashboardRefresh.IntervalSeconds <= 0 {
		c.DashboardRefresh.IntervalSeconds = 60
	}

	origins := make([]string, 0, len(c.Cors.AllowedOrigins))
	for _, origin := range c.Cors.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Cors.AllowedOrigins = origins

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
		c.Database.SSLMode,
	)

	return nil
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
