package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DEFAULT_CONFIG_PATH string = "config.yaml"
const DEFAULT_SQLITE_PATH string = "with_bliss.db"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverMongo    = "mongodb"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Driver        string      `yaml:"driver"`
	SQLitePath    string      `yaml:"sqlite_path"`
	PostgresDSN   string      `yaml:"postgres_dsn"`
	MySQL         MySQLConfig `yaml:"mysql"`
	MongoURI      string      `yaml:"mongo_uri"`
	MongoDatabase string      `yaml:"mongo_database"`
	MaxOpenConns  int         `yaml:"max_open_conns"`
	MaxIdleConns  int         `yaml:"max_idle_conns"`
}

type MySQLConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

// DSN renders the go-sql-driver connection string. A host without a port
// gets the driver default.
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.DBName)
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 5000},
		Database: DatabaseConfig{
			Driver:     DriverSQLite,
			SQLitePath: DEFAULT_SQLITE_PATH,
			MySQL: MySQLConfig{
				Host:   "localhost",
				User:   "root",
				DBName: "with_bliss_db",
			},
			MongoDatabase: "with_bliss_db",
			MaxOpenConns:  100,
			MaxIdleConns:  10,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Load builds the configuration from defaults, an optional .env file, an
// optional YAML file and finally the process environment.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot load .env: %w", err)
	}

	cfg := Default()

	if configPath == "" {
		configPath = getEnv("CONFIG_PATH", DEFAULT_CONFIG_PATH)
	}
	data, err := os.ReadFile(configPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot read config file %v: %w", configPath, err)
	}
	if err == nil {
		expanded := []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(expanded, cfg); err != nil {
			return nil, fmt.Errorf("cannot parse config file %v: %w", configPath, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var err error

	if cfg.Server.Port, err = getEnvInt("PORT", cfg.Server.Port); err != nil {
		return err
	}

	db := &cfg.Database
	useMySQL, err := getEnvBool("USE_MYSQL", false)
	if err != nil {
		return err
	}
	if useMySQL {
		db.Driver = DriverMySQL
	}
	db.Driver = strings.ToLower(getEnv("DB_DRIVER", db.Driver))
	db.SQLitePath = getEnv("SQLITE_PATH", db.SQLitePath)
	db.PostgresDSN = getEnv("DATABASE_URL", db.PostgresDSN)
	db.MySQL.Host = getEnv("MYSQL_HOST", db.MySQL.Host)
	db.MySQL.User = getEnv("MYSQL_USER", db.MySQL.User)
	db.MySQL.Password = getEnv("MYSQL_PASSWORD", db.MySQL.Password)
	db.MySQL.DBName = getEnv("MYSQL_DB", db.MySQL.DBName)
	db.MongoURI = getEnv("MONGODB_CONNSTRING", db.MongoURI)
	db.MongoDatabase = getEnv("MONGODB_DATABASE", db.MongoDatabase)
	if db.MaxOpenConns, err = getEnvInt("DB_MAX_OPEN_CONNS", db.MaxOpenConns); err != nil {
		return err
	}
	if db.MaxIdleConns, err = getEnvInt("DB_MAX_IDLE_CONNS", db.MaxIdleConns); err != nil {
		return err
	}

	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("LOG_FORMAT", cfg.Logging.Format)
	if cfg.Metrics.Enabled, err = getEnvBool("METRICS_ENABLED", cfg.Metrics.Enabled); err != nil {
		return err
	}

	return nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("sqlite path is empty")
		}
	case DriverPostgres:
		if c.Database.PostgresDSN == "" {
			return fmt.Errorf("postgres driver selected but DATABASE_URL is empty")
		}
	case DriverMySQL:
		if c.Database.MySQL.Host == "" {
			return fmt.Errorf("mysql driver selected but MYSQL_HOST is empty")
		}
	case DriverMongo:
		if c.Database.MongoURI == "" {
			return fmt.Errorf("mongodb driver selected but MONGODB_CONNSTRING is empty")
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %v", c.Server.Port)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exist := os.LookupEnv(key); exist && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("env variable %v is not an integer: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return false, fmt.Errorf("env variable %v is not a boolean: %w", key, err)
	}
	return b, nil
}
