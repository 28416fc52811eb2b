package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterMySQLTLS(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		err := RegisterMySQLTLS(filepath.Join(t.TempDir(), "missing.pem"), "db.example.com")
		assert.Error(t, err)
	})

	t.Run("NoCertificates", func(t *testing.T) {
		caFile := filepath.Join(t.TempDir(), "empty.pem")
		assert.NoError(t, os.WriteFile(caFile, []byte("not a certificate"), 0644))

		err := RegisterMySQLTLS(caFile, "db.example.com")
		assert.ErrorContains(t, err, "no certificates found")
	})
}
