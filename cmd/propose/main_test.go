package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openpari/parimarket/models"
)

func TestRun_ArgumentValidation(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")

	t.Run("wrong argument count", func(t *testing.T) {
		err := run([]string{"only-description"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "expected 3 arguments")
	})

	t.Run("missing database credentials", func(t *testing.T) {
		err := run([]string{"Will X happen?", "crypto", "2026-12-31T23:59:59Z"})
		assert.ErrorIs(t, err, models.ErrDatabaseCredentialNotConfigured)
	})
}
