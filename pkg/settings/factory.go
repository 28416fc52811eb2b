package settings

import (
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/century-shop/pkg/config"
)

// RepositoryConfig contains configuration for creating a settings repository
type RepositoryConfig struct {
	// Pool is required for PostgreSQL repositories
	Pool *pgxpool.Pool
	// DB is required for MySQL repositories
	DB *sql.DB
	// DataDir is required for file-based repositories
	DataDir string
}

// NewRepository creates a settings repository based on the persistence type
func NewRepository(persistenceType string, cfg RepositoryConfig) (Repository, error) {
	switch persistenceType {
	case config.PersistencePostgres, "postgresql":
		if cfg.Pool == nil {
			return nil, fmt.Errorf("pool required for postgres repository")
		}
		return NewPostgresRepository(cfg.Pool), nil
	case config.PersistenceMySQL, "tidb":
		if cfg.DB == nil {
			return nil, fmt.Errorf("db required for mysql repository")
		}
		return NewMySQLRepository(cfg.DB), nil
	case config.PersistenceFile:
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("dataDir required for file repository")
		}
		return NewFileRepository(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unsupported persistence type: %s (supported: postgres, mysql, file)", persistenceType)
	}
}
