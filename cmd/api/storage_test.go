package main

import (
	"context"
	"path/filepath"
	"testing"

	"petclinic/internal/platform/config"
	"petclinic/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore_Memory(t *testing.T) {
	ctx := context.Background()

	st, err := openStore(ctx, config.StorageConfig{Driver: config.DriverMemory}, true, logger.Discard())
	require.NoError(t, err)
	defer st.Close()

	assert.Nil(t, st.db)
	o, err := st.repo.GetOwner(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Estaban", o.LastName)

	empty, err := openStore(ctx, config.StorageConfig{Driver: config.DriverMemory}, false, logger.Discard())
	require.NoError(t, err)
	_, err = empty.repo.GetOwner(ctx, 10)
	assert.Error(t, err)
}

func TestOpenStore_SQLiteFile(t *testing.T) {
	ctx := context.Background()
	cfg := config.StorageConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "data", "petclinic.db"),
	}

	st, err := openStore(ctx, cfg, true, logger.Discard())
	require.NoError(t, err)

	types, err := st.repo.ListPetTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 6)
	require.NoError(t, st.Close())

	// reabrir no vuelve a migrar ni a sembrar
	st, err = openStore(ctx, cfg, true, logger.Discard())
	require.NoError(t, err)
	defer st.Close()

	found, err := st.repo.FindOwners(ctx, "")
	require.NoError(t, err)
	assert.Len(t, found, 10)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := openStore(context.Background(), config.StorageConfig{Driver: "mongo"}, false, logger.Discard())
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "seed"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}
