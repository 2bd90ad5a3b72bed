package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress     string        // Адрес и порт запуска сервиса
	DatabaseURI    string        // URI подключения к БД журнала команд
	LedgerAddress  string        // Адрес сервиса выплат
	LedgerAPIToken string        // Токен доступа к сервису выплат
	LedgerTimeout  time.Duration // Таймаут одного запроса к сервису выплат
	JWTSecret      string        // Секретный ключ для токенов операторов
	LogLevel       string        // Уровень логирования
	PageSize       int           // Размер страницы таблиц

	// Кэш чтения
	RedisAddress  string // Пустой адрес означает кэш в памяти
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// Наблюдатель за проведением выплат
	WatcherWorkers      int           // Количество воркеров
	WatcherQueueSize    int           // Размер очереди выплат
	WatcherScanInterval time.Duration // Интервал сканирования pending выплат
}

// defaults возвращает конфигурацию со значениями по умолчанию
func defaults() *Config {
	return &Config{
		RunAddress:          ":8080",
		LedgerTimeout:       10 * time.Second,
		LogLevel:            "info",
		PageSize:            20,
		CacheTTL:            5 * time.Minute,
		WatcherWorkers:      3,
		WatcherQueueSize:    100,
		WatcherScanInterval: 30 * time.Second,
	}
}

// Load загружает конфигурацию из .env, флагов командной строки и переменных окружения.
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs загружает конфигурацию с явно переданными аргументами командной строки
func LoadArgs(args []string) (*Config, error) {
	// .env не перезаписывает уже заданные переменные окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := defaults()

	flags := flag.NewFlagSet("payoutconsole", flag.ContinueOnError)
	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	flags.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flags.StringVar(&cfg.LedgerAddress, "l", "", "payout ledger address")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами.
	// Пустое значение считается незаданным.
	lookupString("RUN_ADDRESS", &cfg.RunAddress)
	lookupString("DATABASE_URI", &cfg.DatabaseURI)
	lookupString("LEDGER_ADDRESS", &cfg.LedgerAddress)

	// Секреты только из env, не из флагов
	cfg.LedgerAPIToken = os.Getenv("LEDGER_API_TOKEN")
	lookupString("JWT_SECRET", &cfg.JWTSecret)
	lookupString("LOG_LEVEL", &cfg.LogLevel)

	lookupPositiveInt("PAGE_SIZE", &cfg.PageSize)
	lookupPositiveDuration("LEDGER_TIMEOUT", &cfg.LedgerTimeout)

	// Кэш
	cfg.RedisAddress = os.Getenv("REDIS_ADDRESS")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil && db >= 0 {
			cfg.RedisDB = db
		}
	}
	lookupPositiveDuration("CACHE_TTL", &cfg.CacheTTL)

	// Наблюдатель
	lookupPositiveInt("WATCHER_WORKERS", &cfg.WatcherWorkers)
	lookupPositiveInt("WATCHER_QUEUE_SIZE", &cfg.WatcherQueueSize)
	lookupPositiveDuration("WATCHER_SCAN_INTERVAL", &cfg.WatcherScanInterval)

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if cfg.LedgerAddress == "" {
		return nil, fmt.Errorf("ledger address is required (use -l flag or LEDGER_ADDRESS env)")
	}

	// Без секрета любой сможет выпустить токен оператора
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required (use JWT_SECRET env)")
	}

	return cfg, nil
}

func lookupString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// lookupPositiveInt перезаписывает dst, если переменная задана положительным числом
func lookupPositiveInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}

func lookupPositiveDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*dst = d
		}
	}
}
