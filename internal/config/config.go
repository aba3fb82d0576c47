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

// Modos de carga do warehouse
const (
	LoadModeAppend  = "append"
	LoadModeReplace = "replace"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Pipeline     Pipeline     `mapstructure:",squash"`
	Analysis     Analysis     `mapstructure:",squash"`
	Reports      Reports      `mapstructure:",squash"`
	PipelineSync PipelineSync `mapstructure:",squash"`
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
	Path     string `mapstructure:"database_path"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Password string `mapstructure:"database_password"`
}

type Pipeline struct {
	TransactionsFile string `mapstructure:"transactions_file"`
	ClientsFile      string `mapstructure:"clients_file"`
	LoadMode         string `mapstructure:"load_mode"`
}

type Analysis struct {
	TopServicesLimit     int `mapstructure:"top_services_limit"`
	MonthlyTrendMonths   int `mapstructure:"monthly_trend_months"`
	ForecastMonths       int `mapstructure:"forecast_months"`
	MinMonthsForForecast int `mapstructure:"min_months_for_forecast"`
}

type Reports struct {
	Enabled bool   `mapstructure:"reports_enabled"`
	Dir     string `mapstructure:"reports_dir"`
}

type PipelineSync struct {
	CronSchedule string `mapstructure:"pipeline_sync_cron"`
	Enabled      bool   `mapstructure:"pipeline_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_PATH", "data/warehouse.db")
	viper.SetDefault("DATABASE_URL", "localhost:5432/finance")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("TRANSACTIONS_FILE", "data/transactions.xlsx")
	viper.SetDefault("CLIENTS_FILE", "data/clients.json")
	viper.SetDefault("LOAD_MODE", LoadModeReplace)

	viper.SetDefault("TOP_SERVICES_LIMIT", 5)
	viper.SetDefault("MONTHLY_TREND_MONTHS", 12)
	viper.SetDefault("FORECAST_MONTHS", 1)
	viper.SetDefault("MIN_MONTHS_FOR_FORECAST", 3)

	viper.SetDefault("REPORTS_ENABLED", true)
	viper.SetDefault("REPORTS_DIR", "reports")

	// Sincronização periódica do pipeline (desabilitada por padrão;
	// cada execução continua processando o snapshot completo dos arquivos)
	viper.SetDefault("PIPELINE_SYNC_CRON", "0 2 * * *")
	viper.SetDefault("PIPELINE_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
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

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = buildDSN(config.Database)

	return config, nil
}

// validate garante os limites antes de qualquer estágio rodar. O horizonte
// de previsão é validado aqui, fora do previsor.
func (c *Config) validate() error {
	if c.Pipeline.LoadMode != LoadModeAppend && c.Pipeline.LoadMode != LoadModeReplace {
		return fmt.Errorf("LOAD_MODE inválido %q: use %q ou %q", c.Pipeline.LoadMode, LoadModeAppend, LoadModeReplace)
	}

	if c.Analysis.ForecastMonths < 1 || c.Analysis.ForecastMonths > 12 {
		return fmt.Errorf("FORECAST_MONTHS deve estar entre 1 e 12, recebido %d", c.Analysis.ForecastMonths)
	}

	if c.Analysis.MinMonthsForForecast < 2 {
		return fmt.Errorf("MIN_MONTHS_FOR_FORECAST deve ser no mínimo 2, recebido %d", c.Analysis.MinMonthsForForecast)
	}

	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("DATABASE_DRIVER inválido %q: use \"sqlite\" ou \"postgres\"", c.Database.Driver)
	}

	return nil
}

func buildDSN(db Database) string {
	if db.Driver == "postgres" {
		return fmt.Sprintf("postgres://%s:%s@%s", db.User, db.Password, db.URL)
	}

	return db.Path
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando variáveis de ambiente")
}
