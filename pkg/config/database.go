package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Persistence backends understood by the repository factories
const (
	PersistencePostgres = "postgres"
	PersistenceMySQL    = "mysql"
	PersistenceFile     = "file"
)

// MySQLTLSConfigName is the name the CA-backed TLS config is registered under
// with the MySQL driver.
const MySQLTLSConfigName = "shop-ca"

// DatabaseConfig holds the relational database configuration shared by the
// Postgres and MySQL/TiDB backends.
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     uint16 `env:"DB_PORT" env-default:"5432"`
	Database string `env:"DB_NAME" env-default:"shop_db"`
	User     string `env:"DB_USER" env-default:"shop"`
	Password string `env:"DB_PASSWORD" env-default:"pwd"`
	Schema   string `env:"DB_SCHEMA" env-default:"public"`
	// CAFile enables TLS for MySQL/TiDB connections when set
	CAFile   string `env:"DB_CA_FILE" env-default:""`
	MaxConns int    `env:"DB_MAX_CONNS" env-default:"10"`
}

// ToDatabaseURL converts the config to a PostgreSQL connection URL
func (d DatabaseConfig) ToDatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable&search_path=%s,public&pool_max_conns=%d",
		d.User, d.Password, d.Host, d.Port, d.Database, d.Schema, d.MaxConns)
}

// ToMySQLDSN converts the config to a go-sql-driver DSN
func (d DatabaseConfig) ToMySQLDSN() string {
	cfg := mysql.NewConfig()
	cfg.User = d.User
	cfg.Passwd = d.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(d.Host, strconv.Itoa(int(d.Port)))
	cfg.DBName = d.Database
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	// report matched rather than changed rows so updates can detect a missing row
	cfg.ClientFoundRows = true
	if d.CAFile != "" {
		cfg.TLSConfig = MySQLTLSConfigName
	}
	return cfg.FormatDSN()
}

// Validate checks the fields every backend needs
func (d DatabaseConfig) Validate() error {
	return Validate(func() ValidationErrors {
		return CollectErrors(
			RequireNonEmpty("DB_HOST", d.Host),
			RequireValidPort("DB_PORT", d.Port),
			RequireNonEmpty("DB_NAME", d.Database),
			RequireNonEmpty("DB_USER", d.User),
			RequirePositive("DB_MAX_CONNS", d.MaxConns),
		)
	})
}

// NewDatabaseConfigFromEnv creates a DatabaseConfig from environment variables
func NewDatabaseConfigFromEnv() DatabaseConfig {
	return DatabaseConfig{
		Host:     GetEnvOrDefault("DB_HOST", "localhost"),
		Port:     GetEnvUint16("DB_PORT", 5432),
		Database: GetEnvOrDefault("DB_NAME", "shop_db"),
		User:     GetEnvOrDefault("DB_USER", "shop"),
		Password: GetEnvOrDefault("DB_PASSWORD", "pwd"),
		Schema:   GetEnvOrDefault("DB_SCHEMA", "public"),
		CAFile:   GetEnv("DB_CA_FILE"),
		MaxConns: GetEnvInt("DB_MAX_CONNS", 10),
	}
}
