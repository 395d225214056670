package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fontes de dados suportadas
const (
	DataSourceFile     = "file"
	DataSourceS3       = "s3"
	DataSourcePostgres = "postgres"
	DataSourceHTTP     = "http"
)

// Backends de cache suportados
const (
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
	CacheBackendNone   = "none"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Data        Data        `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	Redis       Redis       `mapstructure:",squash"`
	Analytics   Analytics   `mapstructure:",squash"`
	CacheWarmup CacheWarmup `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`

	// Origens liberadas no CORS, separadas por vírgula. Vazio usa as origens locais padrão.
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Data struct {
	Source        string `mapstructure:"data_source"`
	CSVPath       string `mapstructure:"data_csv_path"`
	S3Bucket      string `mapstructure:"data_s3_bucket"`
	S3Key         string `mapstructure:"data_s3_key"`
	S3Region      string `mapstructure:"data_s3_region"`
	PostgresTable string `mapstructure:"data_postgres_table"`

	HTTPURL     string        `mapstructure:"data_http_url"`
	HTTPToken   string        `mapstructure:"data_http_token"`
	HTTPTimeout time.Duration `mapstructure:"data_http_timeout"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Cache struct {
	Backend          string        `mapstructure:"cache_backend"`
	TTL              time.Duration `mapstructure:"cache_ttl"`
	MemoryMaxEntries int           `mapstructure:"cache_memory_max_entries"`
	KeyPrefix        string        `mapstructure:"cache_key_prefix"`
}

type Redis struct {
	URL              string        `mapstructure:"redis_url"`
	DialTimeout      time.Duration `mapstructure:"redis_dial_timeout"`
	OperationTimeout time.Duration `mapstructure:"redis_operation_timeout"`
}

type Analytics struct {
	TopN            int `mapstructure:"analytics_top_n"`
	ForecastHorizon int `mapstructure:"analytics_forecast_horizon"`
}

type CacheWarmup struct {
	CronSchedule string `mapstructure:"cache_warmup_cron"`
	Enabled      bool   `mapstructure:"cache_warmup_enabled"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	AdminEmail        string        `mapstructure:"auth_admin_email"`
	AdminPasswordHash string        `mapstructure:"auth_admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

// Enabled indica se as rotas exigem token. Sem segredo configurado a API fica aberta.
func (a Auth) Enabled() bool {
	return a.Secret != ""
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.SetDefault("DATA_SOURCE", DataSourceFile)
	viper.SetDefault("DATA_CSV_PATH", "dados_vendas.csv")
	viper.SetDefault("DATA_S3_BUCKET", "")
	viper.SetDefault("DATA_S3_KEY", "dados_vendas.csv")
	viper.SetDefault("DATA_S3_REGION", "us-east-1")
	viper.SetDefault("DATA_POSTGRES_TABLE", "vendas")
	viper.SetDefault("DATA_HTTP_URL", "")
	viper.SetDefault("DATA_HTTP_TOKEN", "")
	viper.SetDefault("DATA_HTTP_TIMEOUT", "60s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/vendas")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Cache das visões filtradas
	viper.SetDefault("CACHE_BACKEND", CacheBackendRedis)
	viper.SetDefault("CACHE_TTL", "3600s") // 1 hora
	viper.SetDefault("CACHE_MEMORY_MAX_ENTRIES", 256)
	viper.SetDefault("CACHE_KEY_PREFIX", "")

	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("REDIS_DIAL_TIMEOUT", "1s")
	viper.SetDefault("REDIS_OPERATION_TIMEOUT", "500ms")

	viper.SetDefault("ANALYTICS_TOP_N", 10)
	viper.SetDefault("ANALYTICS_FORECAST_HORIZON", 30)

	viper.SetDefault("CACHE_WARMUP_CRON", "*/30 * * * *") // A cada 30 minutos, antes do TTL expirar
	viper.SetDefault("CACHE_WARMUP_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "admin@dashboard.local")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			secondsToDurationHookFunc(),
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate confere as opções enumeradas e os campos obrigatórios de cada fonte
func (c *Config) Validate() error {
	c.Data.Source = strings.ToLower(strings.TrimSpace(c.Data.Source))
	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))

	switch c.Data.Source {
	case DataSourceFile:
		if c.Data.CSVPath == "" {
			return fmt.Errorf("DATA_CSV_PATH é obrigatório quando DATA_SOURCE=%s", DataSourceFile)
		}
	case DataSourceS3:
		if c.Data.S3Bucket == "" || c.Data.S3Key == "" {
			return fmt.Errorf("DATA_S3_BUCKET e DATA_S3_KEY são obrigatórios quando DATA_SOURCE=%s", DataSourceS3)
		}
	case DataSourcePostgres:
		if c.Data.PostgresTable == "" {
			return fmt.Errorf("DATA_POSTGRES_TABLE é obrigatório quando DATA_SOURCE=%s", DataSourcePostgres)
		}
	case DataSourceHTTP:
		if c.Data.HTTPURL == "" {
			return fmt.Errorf("DATA_HTTP_URL é obrigatório quando DATA_SOURCE=%s", DataSourceHTTP)
		}
	default:
		return fmt.Errorf("DATA_SOURCE inválido: %q", c.Data.Source)
	}

	switch c.Cache.Backend {
	case CacheBackendRedis, CacheBackendMemory, CacheBackendNone:
	default:
		return fmt.Errorf("CACHE_BACKEND inválido: %q", c.Cache.Backend)
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL deve ser positivo")
	}

	return nil
}

// secondsToDurationHookFunc aceita durações escritas só com números, interpretadas como segundos (ex: CACHE_TTL=3600)
func secondsToDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}

		seconds, err := strconv.Atoi(strings.TrimSpace(data.(string)))
		if err != nil {
			return data, nil
		}

		return time.Duration(seconds) * time.Second, nil
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
