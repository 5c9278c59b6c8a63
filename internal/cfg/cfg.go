package cfg

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/DRSN-tech/terranova/pkg/logger"
	"github.com/gorilla/securecookie"
	"github.com/jimlawless/whereami"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	CatalogSourceFile  = "file"
	CatalogSourceMinio = "minio"

	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)

type Config struct {
	AppEnv  string
	Http    *HTTPConfig
	Grpc    *GRPCConfig
	Redis   *RedisCfg
	Minio   *MinIOCfg
	Catalog *CatalogCfg
	Session *SessionCfg
	Logger  *LoggerCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	StaticDir    string // если пусто, статика не раздаётся
}

type GRPCConfig struct {
	Enabled     bool
	Port        string
	NetworkMode string
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
}

type MinIOCfg struct {
	MinioEndpoint     string // Адрес конечной точки Minio
	MinioRootUser     string // Имя пользователя для доступа к Minio
	MinioRootPassword string // Пароль для доступа к Minio
	MinioUseSSL       bool
}

type CatalogCfg struct {
	Source string // file | minio
	Path   string // путь к CSV для Source=file
	Bucket string // бакет и объект для Source=minio
	Object string
}

type SessionCfg struct {
	Backend      string // redis | memory
	Secret       []byte // ключ подписи cookie
	CookieName   string
	CookieSecure bool
	TTL          time.Duration
	MaxEntries   int // только для memory
	MaxRetries   int // повторы оптимистичной транзакции в redis
}

type LoggerCfg struct {
	Level    string
	Encoding string
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	appEnv := getEnvOrDefault("APP_ENV", EnvDevelopment)

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	grpc, err := loadGRPCConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalog, err := loadCatalogCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	session, err := loadSessionCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cfg := &Config{
		AppEnv:  appEnv,
		Http:    http,
		Grpc:    grpc,
		Catalog: catalog,
		Session: session,
		Logger:  loadLoggerCfg(appEnv),
	}

	if session.Backend == SessionBackendRedis {
		if cfg.Redis, err = loadRedisCfg(log); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	if catalog.Source == CatalogSourceMinio {
		if cfg.Minio, err = loadMinIOCfg(log); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return cfg, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, e.Wrap("HTTP_READ_TIMEOUT", err)
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, e.Wrap("HTTP_WRITE_TIMEOUT", err)
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, e.Wrap("KEEP_ALIVE", err)
	}

	return &HTTPConfig{
		Port:         getEnvOrDefault("HTTP_PORT", defaultPort),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		StaticDir:    getEnv("STATIC_DIR"),
	}, nil
}

func loadGRPCConfig(log logger.Logger) (*GRPCConfig, error) {
	const (
		defaultPort        = "8091"
		defaultNetworkMode = "tcp"
	)

	enabled, err := parseBoolEnv("GRPC_ENABLED", false)
	if err != nil {
		log.Errorf(err, "invalid GRPC_ENABLED")
		return nil, e.Wrap("GRPC_ENABLED", err)
	}

	return &GRPCConfig{
		Enabled:     enabled,
		Port:        getEnvOrDefault("GRPC_PORT", defaultPort),
		NetworkMode: getEnvOrDefault("GRPC_NETWORK_MODE", defaultNetworkMode),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, e.Wrap("REDIS_DB_ID", err)
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, e.Wrap("MAX_RETRIES", err)
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, e.Wrap("DIAL_TIMEOUT", err)
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, e.Wrap("READ_TIMEOUT", err)
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, e.Wrap("WRITE_TIMEOUT", err)
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const defaultEndpoint = "minio:9000"

	useSSL, err := parseBoolEnv("MINIO_USE_SSL", false)
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, e.Wrap("MINIO_USE_SSL", err)
	}

	return &MinIOCfg{
		MinioEndpoint:     getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
	}, nil
}

func loadCatalogCfg() (*CatalogCfg, error) {
	const (
		defaultPath   = "product_detail/terra.csv"
		defaultObject = "terra.csv"
	)

	source := getEnvOrDefault("CATALOG_SOURCE", CatalogSourceFile)
	if source != CatalogSourceFile && source != CatalogSourceMinio {
		return nil, e.Wrap(fmt.Sprintf("CATALOG_SOURCE=%q", source), e.ErrIncorrectEnvVariable)
	}

	c := &CatalogCfg{
		Source: source,
		Path:   getEnvOrDefault("CATALOG_PATH", defaultPath),
		Bucket: getEnv("CATALOG_BUCKET"),
		Object: getEnvOrDefault("CATALOG_OBJECT", defaultObject),
	}

	if source == CatalogSourceMinio && c.Bucket == "" {
		return nil, fmt.Errorf("CATALOG_BUCKET is required for CATALOG_SOURCE=minio")
	}

	return c, nil
}

func loadSessionCfg(log logger.Logger) (*SessionCfg, error) {
	const (
		defaultCookieName = "terranova_session"
		defaultTTL        = 24 * time.Hour
		defaultMaxEntries = 10_000
		defaultMaxRetries = 5
	)

	backend := getEnvOrDefault("SESSION_BACKEND", SessionBackendMemory)
	if backend != SessionBackendRedis && backend != SessionBackendMemory {
		return nil, e.Wrap(fmt.Sprintf("SESSION_BACKEND=%q", backend), e.ErrIncorrectEnvVariable)
	}

	ttl, err := parseDurationEnv("SESSION_TTL", defaultTTL)
	if err != nil {
		log.Errorf(err, "invalid SESSION_TTL")
		return nil, e.Wrap("SESSION_TTL", err)
	}
	if ttl <= 0 {
		return nil, e.Wrap("SESSION_TTL must be positive", e.ErrIncorrectEnvVariable)
	}

	maxEntries, err := parseIntEnv("SESSION_MAX_ENTRIES", defaultMaxEntries)
	if err != nil {
		log.Errorf(err, "invalid SESSION_MAX_ENTRIES")
		return nil, e.Wrap("SESSION_MAX_ENTRIES", err)
	}

	maxRetries, err := parseIntEnv("SESSION_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid SESSION_MAX_RETRIES")
		return nil, e.Wrap("SESSION_MAX_RETRIES", err)
	}

	secure, err := parseBoolEnv("SESSION_COOKIE_SECURE", false)
	if err != nil {
		log.Errorf(err, "invalid SESSION_COOKIE_SECURE")
		return nil, e.Wrap("SESSION_COOKIE_SECURE", err)
	}

	secret := []byte(getEnv("SESSION_SECRET"))
	if len(secret) == 0 {
		log.Warnf("SESSION_SECRET is not set, generated a random key: sessions will not survive a restart")
		secret = securecookie.GenerateRandomKey(32)
	}

	return &SessionCfg{
		Backend:      backend,
		Secret:       secret,
		CookieName:   getEnvOrDefault("SESSION_COOKIE", defaultCookieName),
		CookieSecure: secure,
		TTL:          ttl,
		MaxEntries:   maxEntries,
		MaxRetries:   maxRetries,
	}, nil
}

func loadLoggerCfg(appEnv string) *LoggerCfg {
	defaultLevel, defaultEncoding := "info", "json"
	if appEnv == EnvDevelopment {
		defaultLevel, defaultEncoding = "debug", "console"
	}

	return &LoggerCfg{
		Level:    getEnvOrDefault("LOGGER_LEVEL", defaultLevel),
		Encoding: getEnvOrDefault("LOGGER_ENCODING", defaultEncoding),
	}
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return b, nil
}
