package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/cricktrackr/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration
	LogLevel                logging.Level
	StoreDriver             string
	DBURL                   string
	DBMaxOpenConns          int
	DBDisablePreparedBinary bool
	CORSAllowedOrigins      []string
	MatchWindowDays         int
	CricAPIBaseURL          string
	CricAPIKey              string
	CricAPITimeout          time.Duration
	CricAPIMaxRetries       int
	CricAPIRatePerSecond    float64
	CricAPICircuitEnabled   bool
	CricAPICircuitFailures  int
	CricAPICircuitOpenFor   time.Duration
	CricAPICircuitHalfOpen  int
	AdminToolsEnabled       bool
	FillStatsWorkers        int
	MetricsEnabled          bool
	PprofEnabled            bool
	PprofAddr               string
	UptraceEnabled          bool
	UptraceDSN              string
	PyroscopeEnabled        bool
	PyroscopeServerAddress  string
	PyroscopeAppName        string
	PyroscopeAuthToken      string
	PyroscopeUploadRate     time.Duration
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := parsePositiveDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := parsePositiveDuration("APP_WRITE_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}

	storeDriver := strings.ToLower(strings.TrimSpace(getEnv("STORE_DRIVER", StoreMemory)))
	if storeDriver != StoreMemory && storeDriver != StorePostgres {
		return Config{}, fmt.Errorf("invalid STORE_DRIVER %q: valid values are %s, %s", storeDriver, StoreMemory, StorePostgres)
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if storeDriver == StorePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORE_DRIVER=%s", StorePostgres)
	}
	dbMaxOpenConns, err := getEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if dbMaxOpenConns < 1 {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	matchWindowDays, err := getEnvAsInt("MATCH_WINDOW_DAYS", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCH_WINDOW_DAYS: %w", err)
	}
	if matchWindowDays <= 0 {
		return Config{}, fmt.Errorf("MATCH_WINDOW_DAYS must be > 0")
	}

	cricAPITimeout, err := parsePositiveDuration("CRICAPI_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	cricAPIMaxRetries, err := getEnvAsInt("CRICAPI_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICAPI_MAX_RETRIES: %w", err)
	}
	if cricAPIMaxRetries < 0 {
		return Config{}, fmt.Errorf("CRICAPI_MAX_RETRIES must be >= 0")
	}
	cricAPIRate, err := strconv.ParseFloat(getEnv("CRICAPI_RATE_PER_SECOND", "5"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICAPI_RATE_PER_SECOND: %w", err)
	}
	if cricAPIRate <= 0 {
		return Config{}, fmt.Errorf("CRICAPI_RATE_PER_SECOND must be > 0")
	}
	cricAPICircuitEnabled, err := strconv.ParseBool(getEnv("CRICAPI_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICAPI_CIRCUIT_ENABLED: %w", err)
	}
	cricAPICircuitFailures, err := getEnvAsInt("CRICAPI_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICAPI_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cricAPICircuitFailures < 1 {
		return Config{}, fmt.Errorf("CRICAPI_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	cricAPICircuitOpenFor, err := parsePositiveDuration("CRICAPI_CIRCUIT_OPEN_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	cricAPICircuitHalfOpen, err := getEnvAsInt("CRICAPI_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICAPI_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if cricAPICircuitHalfOpen < 1 {
		return Config{}, fmt.Errorf("CRICAPI_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	adminDefault := "true"
	if appEnv == EnvProd {
		adminDefault = "false"
	}
	adminToolsEnabled, err := strconv.ParseBool(getEnv("ADMIN_TOOLS_ENABLED", adminDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse ADMIN_TOOLS_ENABLED: %w", err)
	}

	fillStatsWorkers, err := getEnvAsInt("FILL_STATS_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse FILL_STATS_WORKERS: %w", err)
	}
	if fillStatsWorkers < 1 {
		return Config{}, fmt.Errorf("FILL_STATS_WORKERS must be >= 1")
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := parsePositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	logLevel, err := logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}

	cfg := Config{
		AppEnv:                  appEnv,
		ServiceName:             getEnv("APP_SERVICE_NAME", "cricktrackr-api"),
		ServiceVersion:          getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:             readTimeout,
		WriteTimeout:            writeTimeout,
		LogLevel:                logLevel,
		StoreDriver:             storeDriver,
		DBURL:                   dbURL,
		DBMaxOpenConns:          dbMaxOpenConns,
		DBDisablePreparedBinary: dbDisablePreparedBinary,
		CORSAllowedOrigins:      splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		MatchWindowDays:         matchWindowDays,
		CricAPIBaseURL:          strings.TrimSpace(getEnv("CRICAPI_BASE_URL", "https://api.cricapi.com/v1")),
		CricAPIKey:              strings.TrimSpace(getEnv("CRICAPI_KEY", "")),
		CricAPITimeout:          cricAPITimeout,
		CricAPIMaxRetries:       cricAPIMaxRetries,
		CricAPIRatePerSecond:    cricAPIRate,
		CricAPICircuitEnabled:   cricAPICircuitEnabled,
		CricAPICircuitFailures:  cricAPICircuitFailures,
		CricAPICircuitOpenFor:   cricAPICircuitOpenFor,
		CricAPICircuitHalfOpen:  cricAPICircuitHalfOpen,
		AdminToolsEnabled:       adminToolsEnabled,
		FillStatsWorkers:        fillStatsWorkers,
		MetricsEnabled:          metricsEnabled,
		PprofEnabled:            pprofEnabled,
		PprofAddr:               pprofAddr,
		UptraceEnabled:          uptraceEnabled,
		UptraceDSN:              uptraceDSN,
		PyroscopeEnabled:        pyroscopeEnabled,
		PyroscopeServerAddress:  pyroscopeServerAddress,
		PyroscopeAuthToken:      strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:     pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
