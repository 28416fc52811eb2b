package bill

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const billsFileName = "bills.json"

// FileRepository implements Repository with a JSON file under dataDir
type FileRepository struct {
	dataDir string
	bills   []*Bill
	codes   map[string]struct{}
	mutex   sync.RWMutex
}

type billData struct {
	Bills []*Bill `json:"bills"`
}

// NewFileRepository creates the data directory if needed and loads any stored bills
func NewFileRepository(dataDir string) (*FileRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo := &FileRepository{
		dataDir: dataDir,
		codes:   make(map[string]struct{}),
	}
	if err := repo.load(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	return repo, nil
}

func (r *FileRepository) CreateBill(ctx context.Context, b Bill) (*Bill, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.codes[b.TrackingCode]; exists {
		return nil, ErrDuplicateTrackingCode
	}

	b.CreatedAt = time.Now().UTC()
	b.Items = append([]LineItem(nil), b.Items...)

	stored := b
	r.bills = append(r.bills, &stored)
	r.codes[b.TrackingCode] = struct{}{}

	if err := r.save(); err != nil {
		r.bills = r.bills[:len(r.bills)-1]
		delete(r.codes, b.TrackingCode)
		return nil, fmt.Errorf("failed to save: %w", err)
	}
	return &b, nil
}

// Len reports how many bills are stored
func (r *FileRepository) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.bills)
}

func (r *FileRepository) load() error {
	data, err := os.ReadFile(filepath.Join(r.dataDir, billsFileName))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var stored billData
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}
	r.bills = stored.Bills
	for _, b := range r.bills {
		r.codes[b.TrackingCode] = struct{}{}
	}
	return nil
}

// save writes every bill to file atomically
func (r *FileRepository) save() error {
	jsonData, err := json.MarshalIndent(billData{Bills: r.bills}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	tempFile := filepath.Join(r.dataDir, billsFileName+".tmp")
	if err := os.WriteFile(tempFile, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempFile, filepath.Join(r.dataDir, billsFileName)); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
