package configs

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	Port     string
	LogLevel string

	StoreDriver string
	DataFile    string
	DB          DBConfig

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
	AdminPassword     string
	SessionTTL        time.Duration
	SessionSweepCron  string

	DefaultStudent string
	StaticDir      string
	TimeZone       string
	CorsOrigins    string
	SeedDemoData   bool

	MidtransServerKey string
	MidtransUseProd   bool
}

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
}

// DSN in URL form with a 3s statement timeout.
func (d DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=educonnect&options=-c statement_timeout=3000",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// =======================
// ENV LOADER
// =======================
func LoadEnv(logger log.Logger) Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			level.Info(logger).Log("msg", "no .env file, using system environment")
		} else {
			level.Info(logger).Log("msg", ".env file loaded")
		}
	} else {
		level.Info(logger).Log("msg", "running on Railway, using system environment")
	}

	cfg := Config{
		Port:     GetEnv("PORT", "3000"),
		LogLevel: GetEnv("LOG_LEVEL", "info"),

		StoreDriver: strings.ToLower(GetEnv("STORE_DRIVER", StoreDriverFile)),
		DataFile:    GetEnv("DATA_FILE", "data/student_data.json"),
		DB: DBConfig{
			User:     GetEnv("DB_USER"),
			Password: GetEnv("DB_PASSWORD"),
			Host:     GetEnv("DB_HOST", "localhost"),
			Port:     GetEnv("DB_PORT", "5432"),
			Name:     GetEnv("DB_NAME"),
			SSLMode:  GetEnv("DB_SSLMODE", "require"),
		},

		JWTSecret:         GetEnv("JWT_SECRET"),
		AdminUsername:     GetEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: GetEnv("ADMIN_PASSWORD_HASH"),
		AdminPassword:     GetEnv("ADMIN_PASSWORD", "admin123"),
		SessionTTL:        time.Duration(getInt(logger, "ADMIN_SESSION_TTL_HOURS", 0)) * time.Hour,
		SessionSweepCron:  GetEnv("SESSION_SWEEP_CRON", "@every 1h"),

		DefaultStudent: GetEnv("DEFAULT_STUDENT", "lakshya sharma"),
		StaticDir:      GetEnv("STATIC_DIR"),
		TimeZone:       GetEnv("TIMEZONE", "Asia/Kolkata"),
		CorsOrigins:    GetEnv("CORS_ORIGINS", "*"),
		SeedDemoData:   getBool(logger, "SEED_DEMO_DATA", true),

		MidtransServerKey: GetEnv("MIDTRANS_SERVER_KEY"),
		MidtransUseProd:   getBool(logger, "MIDTRANS_USE_PROD", false),
	}

	if cfg.JWTSecret == "" {
		level.Warn(logger).Log("msg", "JWT_SECRET is not set")
	}
	if cfg.MidtransServerKey == "" {
		level.Info(logger).Log("msg", "MIDTRANS_SERVER_KEY is not set, online fee checkout disabled")
	}
	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getBool(logger log.Logger, key string, def bool) bool {
	v := GetEnv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		level.Warn(logger).Log("msg", "invalid boolean, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func getInt(logger log.Logger, key string, def int) int {
	v := GetEnv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		level.Warn(logger).Log("msg", "invalid integer, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
	Logger        log.Logger
}

func NewGormLogger(logger log.Logger) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
		Logger:        log.With(logger, "component", "gorm"),
	}
}

func (l *GormLogger) LogMode(lvl gormLogger.LogLevel) gormLogger.Interface {
	out := *l
	out.LogLevel = lvl
	return &out
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		level.Info(l.Logger).Log("msg", fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		level.Warn(l.Logger).Log("msg", fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		level.Error(l.Logger).Log("msg", fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		level.Error(l.Logger).Log("file", file, "err", err, "elapsed", elapsed, "rows", rows, "sql", sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		level.Warn(l.Logger).Log("msg", "slow sql", "file", file, "elapsed", elapsed, "rows", rows, "sql", sql)
	case l.LogLevel >= gormLogger.Info:
		level.Debug(l.Logger).Log("file", file, "elapsed", elapsed, "rows", rows, "sql", sql)
	}
}
