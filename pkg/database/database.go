// Package database opens the relational stores backing the shop repositories.
package database

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/century-shop/pkg/config"
)

// NewPostgresPool creates a pgx pool and checks that the server answers
func NewPostgresPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ToDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	slog.Info("Connected to postgres", "host", cfg.Host, "port", cfg.Port, "database", cfg.Database)
	return pool, nil
}

// RegisterMySQLTLS loads a CA bundle and registers it with the MySQL driver
// under config.MySQLTLSConfigName. TiDB Cloud requires this.
func RegisterMySQLTLS(caFile, serverName string) error {
	pem, err := os.ReadFile(caFile)
	if err != nil {
		return fmt.Errorf("failed to read CA file: %w", err)
	}

	rootCertPool := x509.NewCertPool()
	if ok := rootCertPool.AppendCertsFromPEM(pem); !ok {
		return fmt.Errorf("no certificates found in %s", caFile)
	}

	return mysql.RegisterTLSConfig(config.MySQLTLSConfigName, &tls.Config{
		RootCAs:    rootCertPool,
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	})
}

// OpenMySQL opens a MySQL/TiDB connection pool and checks that the server answers
func OpenMySQL(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	if cfg.CAFile != "" {
		if err := RegisterMySQLTLS(cfg.CAFile, cfg.Host); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("mysql", cfg.ToMySQLDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}

	slog.Info("Connected to mysql", "host", cfg.Host, "port", cfg.Port, "database", cfg.Database, "tls", cfg.CAFile != "")
	return db, nil
}
