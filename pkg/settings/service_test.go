package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/tendant/century-shop/pkg/errors"
	"github.com/tendant/century-shop/pkg/notification"
)

func setupTestService(t *testing.T) (*Service, *FileRepository) {
	repo, err := NewFileRepository(t.TempDir())
	require.NoError(t, err)
	return NewService(repo), repo
}

type failingRepository struct {
	err error
}

func (f failingRepository) GetConfig(ctx context.Context) (*SystemConfig, bool, error) {
	return nil, false, f.err
}

func (f failingRepository) CreateConfig(ctx context.Context, cfg SystemConfig) (*SystemConfig, error) {
	return nil, f.err
}

func (f failingRepository) UpdateConfig(ctx context.Context, cfg SystemConfig) (bool, error) {
	return false, f.err
}

func TestGetConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesDefaultsWhenEmpty", func(t *testing.T) {
		service, repo := setupTestService(t)

		cfg, err := service.GetConfig(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, cfg.ID)
		assert.Equal(t, "century", cfg.Name)
		assert.Equal(t, "ejemplo@email.com", cfg.Email)

		stored, found, err := repo.GetConfig(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, cfg.ID, stored.ID)
	})

	t.Run("ReturnsExistingRow", func(t *testing.T) {
		service, _ := setupTestService(t)

		first, err := service.GetConfig(ctx)
		require.NoError(t, err)
		second, err := service.GetConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("CustomDefaults", func(t *testing.T) {
		repo, err := NewFileRepository(t.TempDir())
		require.NoError(t, err)
		service := NewService(repo, WithDefaults(SystemConfig{Name: "demo", Email: "demo@example.com"}))

		cfg, err := service.GetConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, "demo", cfg.Name)
	})

	t.Run("StoreFailureIsInternal", func(t *testing.T) {
		service := NewService(failingRepository{err: errors.New("connection refused")})

		_, err := service.GetConfig(ctx)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInternal))
		assert.Equal(t, "error fetching system configuration", apperrors.PublicMessage(err, ""))
	})
}

func TestUpdateConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingID", func(t *testing.T) {
		service, _ := setupTestService(t)
		err := service.UpdateConfig(ctx, SystemConfig{Name: "x"})
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMissingRequired))
	})

	t.Run("UnknownID", func(t *testing.T) {
		service, _ := setupTestService(t)
		_, err := service.GetConfig(ctx)
		require.NoError(t, err)

		err = service.UpdateConfig(ctx, SystemConfig{ID: uuid.New(), Name: "x"})
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
	})

	t.Run("UpdatesAndKeepsPasswordWhenEmpty", func(t *testing.T) {
		service, _ := setupTestService(t)
		cfg, err := service.GetConfig(ctx)
		require.NoError(t, err)

		changed := *cfg
		changed.Name = "century store"
		changed.Email = "shop@example.com"
		changed.Password = ""
		require.NoError(t, service.UpdateConfig(ctx, changed))

		got, err := service.GetConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, "century store", got.Name)
		assert.Equal(t, "shop@example.com", got.Email)
		assert.Equal(t, "pass", got.Password)
	})
}

func TestMailAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("AbsentDoesNotCreateDefaults", func(t *testing.T) {
		service, repo := setupTestService(t)

		_, found, err := service.MailAccount(ctx)
		require.NoError(t, err)
		assert.False(t, found)

		_, found, err = repo.GetConfig(ctx)
		require.NoError(t, err)
		assert.False(t, found, "reading the mail account must not create a configuration")
	})

	t.Run("Present", func(t *testing.T) {
		service, _ := setupTestService(t)
		_, err := service.GetConfig(ctx)
		require.NoError(t, err)

		var source notification.AccountSource = service
		account, found, err := source.MailAccount(ctx)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, notification.Account{Address: "ejemplo@email.com", Password: "pass"}, account)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		service := NewService(failingRepository{err: errors.New("boom")})
		_, _, err := service.MailAccount(ctx)
		assert.Error(t, err)
	})
}

func TestFileRepositoryPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := NewFileRepository(dir)
	require.NoError(t, err)
	created, err := repo.CreateConfig(ctx, SystemConfig{ID: uuid.New(), Name: "century", Email: "shop@example.com", Password: "secret"})
	require.NoError(t, err)

	reopened, err := NewFileRepository(dir)
	require.NoError(t, err)
	cfg, found, err := reopened.GetConfig(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created.ID, cfg.ID)
	assert.Equal(t, "secret", cfg.Password)
}

func TestNewRepository(t *testing.T) {
	_, err := NewRepository("postgres", RepositoryConfig{})
	assert.Error(t, err)
	_, err = NewRepository("mysql", RepositoryConfig{})
	assert.Error(t, err)
	_, err = NewRepository("mongo", RepositoryConfig{})
	assert.Error(t, err)

	repo, err := NewRepository("file", RepositoryConfig{DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileRepository{}, repo)
}
