package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const configFileName = "system_config.json"

// FileRepository implements Repository with a JSON file under dataDir
type FileRepository struct {
	dataDir string
	config  *SystemConfig
	mutex   sync.RWMutex
}

// fileConfig mirrors SystemConfig with the password kept on disk
type fileConfig struct {
	SystemConfig
	Password string `json:"password"`
}

// NewFileRepository creates the data directory if needed and loads any stored config
func NewFileRepository(dataDir string) (*FileRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo := &FileRepository{dataDir: dataDir}
	if err := repo.load(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	return repo, nil
}

func (r *FileRepository) GetConfig(ctx context.Context) (*SystemConfig, bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if r.config == nil {
		return nil, false, nil
	}
	c := *r.config
	return &c, true, nil
}

func (r *FileRepository) CreateConfig(ctx context.Context, cfg SystemConfig) (*SystemConfig, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := time.Now().UTC()
	cfg.CreatedAt = now
	cfg.UpdatedAt = now

	previous := r.config
	r.config = &cfg
	if err := r.save(); err != nil {
		r.config = previous
		return nil, fmt.Errorf("failed to save: %w", err)
	}

	c := cfg
	return &c, nil
}

func (r *FileRepository) UpdateConfig(ctx context.Context, cfg SystemConfig) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.config == nil || r.config.ID != cfg.ID {
		return false, nil
	}

	previous := *r.config
	if cfg.Password == "" {
		cfg.Password = previous.Password
	}
	cfg.CreatedAt = previous.CreatedAt
	cfg.UpdatedAt = time.Now().UTC()

	r.config = &cfg
	if err := r.save(); err != nil {
		r.config = &previous
		return false, fmt.Errorf("failed to save: %w", err)
	}
	return true, nil
}

func (r *FileRepository) load() error {
	data, err := os.ReadFile(filepath.Join(r.dataDir, configFileName))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var stored fileConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}
	stored.SystemConfig.Password = stored.Password
	r.config = &stored.SystemConfig
	return nil
}

// save writes the config atomically through a temp file and rename
func (r *FileRepository) save() error {
	jsonData, err := json.MarshalIndent(fileConfig{SystemConfig: *r.config, Password: r.config.Password}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	tempFile := filepath.Join(r.dataDir, configFileName+".tmp")
	if err := os.WriteFile(tempFile, jsonData, 0600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempFile, filepath.Join(r.dataDir, configFileName)); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
