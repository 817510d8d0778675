package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livraria/internal/config"
	"livraria/internal/repository/sqlite"
	"livraria/internal/schema"
)

func TestRunCreatesSchema(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(t.TempDir(), "livraria.db")

	log, hook := test.NewNullLogger()

	require.NoError(t, run(ctx, cfg, log))
	require.NoError(t, run(ctx, cfg, log), "second run must be a no-op")

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, "schema ready", last.Message)
	assert.Equal(t, len(schema.Tables()), last.Data["tables"])

	store, err := sqlite.Open(cfg.Database.Path)
	require.NoError(t, err)
	defer store.Close()

	tables, err := store.Tables(ctx)
	require.NoError(t, err)
	assert.Len(t, tables, len(schema.Tables()))
}

func TestRunUnwritablePath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(t.TempDir(), "no", "such", "dir", "livraria.db")

	log, _ := test.NewNullLogger()
	assert.Error(t, run(context.Background(), cfg, log))
}
