package tomlfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltraco/dispatch-match-cli/internal/domain"
)

func writeSnapshotFixture(t *testing.T, dir string) {
	t.Helper()

	clients := `version = 1

[[clients]]
name = "Ada"
reward = 12.5
demands = ["towing"]

[clients.position]
x = 1.0
y = 2.0

[[clients]]
name = "Bram"
reward = 7.0

[clients.position]
x = -3.0
y = 0.5
`

	executor := `version = 1

[executor]
possibilities = ["towing", "fuel"]

[executor.position]
x = 0.0
y = 0.0
`

	require.NoError(t, os.WriteFile(filepath.Join(dir, "clients.toml"), []byte(clients), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "executor.toml"), []byte(executor), 0o644))
}

func TestSourceReadsSnapshotFiles(t *testing.T) {
	dir := t.TempDir()
	writeSnapshotFixture(t, dir)

	source, err := NewSource(viper.New(), dir)
	require.NoError(t, err)

	clients, err := source.FetchClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)

	assert.Equal(t, "Ada", clients[0].Name)
	assert.Equal(t, domain.Position{X: 1, Y: 2}, clients[0].Position)
	assert.True(t, clients[0].Reward.Equal(decimal.NewFromFloat(12.5)))
	assert.Equal(t, []domain.Demand{"towing"}, clients[0].Demands)
	assert.Nil(t, clients[1].Demands, "omitted demands key means no requirements")

	executor, err := source.FetchExecutor(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Demand{"towing", "fuel"}, executor.Possibilities)
	assert.Equal(t, domain.Position{}, executor.Position)
}

func TestSourceResolvesDirFromConfigKey(t *testing.T) {
	dir := t.TempDir()
	writeSnapshotFixture(t, dir)
	t.Setenv("HOME", t.TempDir())

	config := viper.New()
	config.Set("data.dir", dir)

	source, err := NewSource(config, "")
	require.NoError(t, err)

	clients, err := source.FetchClients(context.Background())
	require.NoError(t, err)
	assert.Len(t, clients, 2)
}

func TestSourceReportsMissingSnapshotFile(t *testing.T) {
	source, err := NewSource(viper.New(), t.TempDir())
	require.NoError(t, err)

	_, err = source.FetchClients(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clients.toml not found")

	_, err = source.FetchExecutor(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executor.toml not found")
}

func TestSourceRejectsNewerSchemaVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clients.toml"), []byte("version = 2\n"), 0o644))

	source, err := NewSource(viper.New(), dir)
	require.NoError(t, err)

	_, err = source.FetchClients(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported clients schema version 2")
}

func TestSourceRejectsMalformedSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "executor.toml"), []byte("[executor\n"), 0o644))

	source, err := NewSource(viper.New(), dir)
	require.NoError(t, err)

	_, err = source.FetchExecutor(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode snapshot file executor.toml")
}
