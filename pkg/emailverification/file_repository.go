package emailverification

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const tokensFileName = "verification_tokens.json"

// FileRepository implements Repository using file-based storage
type FileRepository struct {
	dataDir string
	tokens  map[string]*VerificationToken // Key: token string
	mutex   sync.RWMutex
}

// verificationData represents the structure of data stored in the JSON file
type verificationData struct {
	Tokens []*VerificationToken `json:"tokens"`
}

// NewFileRepository creates a new file-based verification token repository
func NewFileRepository(dataDir string) (*FileRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo := &FileRepository{
		dataDir: dataDir,
		tokens:  make(map[string]*VerificationToken),
	}

	if err := repo.load(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	return repo, nil
}

func (r *FileRepository) CreateVerificationToken(ctx context.Context, email, token string, expiresAt time.Time) (*VerificationToken, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.tokens[token]; exists {
		return nil, fmt.Errorf("token already stored")
	}

	vt := &VerificationToken{
		ID:        uuid.New(),
		Email:     email,
		Token:     token,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	r.tokens[token] = vt

	if err := r.save(); err != nil {
		delete(r.tokens, token)
		return nil, fmt.Errorf("failed to save: %w", err)
	}

	vtCopy := *vt
	return &vtCopy, nil
}

func (r *FileRepository) FindVerificationToken(ctx context.Context, token string) (*VerificationToken, bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	vt, exists := r.tokens[token]
	if !exists {
		return nil, false, nil
	}
	vtCopy := *vt
	return &vtCopy, true, nil
}

// load reads the stored tokens; a missing or empty file means no tokens
func (r *FileRepository) load() error {
	data, err := os.ReadFile(filepath.Join(r.dataDir, tokensFileName))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var stored verificationData
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}
	for _, vt := range stored.Tokens {
		r.tokens[vt.Token] = vt
	}
	return nil
}

// save writes every token to file atomically
func (r *FileRepository) save() error {
	tokens := make([]*VerificationToken, 0, len(r.tokens))
	for _, vt := range r.tokens {
		tokens = append(tokens, vt)
	}

	jsonData, err := json.MarshalIndent(verificationData{Tokens: tokens}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	tempFile := filepath.Join(r.dataDir, tokensFileName+".tmp")
	if err := os.WriteFile(tempFile, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempFile, filepath.Join(r.dataDir, tokensFileName)); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
