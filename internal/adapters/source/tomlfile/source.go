// Package tomlfile reads clients and the executor from local TOML snapshot
// files. The source is read-only; snapshots are produced out of band.
package tomlfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/veltraco/dispatch-match-cli/internal/domain"
	"github.com/veltraco/dispatch-match-cli/internal/ports"
)

const (
	configName    = "config"
	configType    = "toml"
	dataDirKey    = "data.dir"
	configDirName = ".dispatchmatch"
	clientsFile   = "clients.toml"
	executorFile  = "executor.toml"
)

type Source struct {
	dataDir string
	logger  zerolog.Logger
}

var (
	_ ports.ClientSource   = (*Source)(nil)
	_ ports.ExecutorSource = (*Source)(nil)
)

// NewSource resolves the snapshot directory from dataDir when non-empty,
// otherwise from the config file key "data.dir" with a home-relative default.
func NewSource(cfg *viper.Viper, dataDir string) (*Source, error) {
	if dataDir == "" {
		resolved, err := resolveDataDir(cfg)
		if err != nil {
			return nil, err
		}
		dataDir = resolved
	}

	absDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data directory: %w", err)
	}

	return &Source{dataDir: filepath.Clean(absDir), logger: zerolog.Nop()}, nil
}

func (s *Source) SetLogger(l zerolog.Logger) {
	s.logger = l.With().Str("component", "tomlfile").Logger()
}

func resolveDataDir(cfg *viper.Viper) (string, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(dataDirKey, filepath.Join(homeDir, configDirName, "data"))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return "", fmt.Errorf("read config file: %w", err)
		}
	}

	dataDir := cfg.GetString(dataDirKey)
	if dataDir == "" {
		return "", errors.New("data directory is empty")
	}

	return dataDir, nil
}

func (s *Source) FetchClients(ctx context.Context) ([]domain.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var file clientsFileSchema
	if err := s.readSchema(clientsFile, &file); err != nil {
		return nil, fmt.Errorf("fetch clients: %w", err)
	}
	file.applyDefaults()
	if err := file.validateVersion(); err != nil {
		return nil, fmt.Errorf("fetch clients: %w", err)
	}

	clients := make([]domain.Client, 0, len(file.Clients))
	for _, entry := range file.Clients {
		clients = append(clients, clientFromSchema(entry))
	}

	s.logger.Debug().Int("clients", len(clients)).Str("dir", s.dataDir).Msg("clients snapshot read")

	return clients, nil
}

func (s *Source) FetchExecutor(ctx context.Context) (domain.Executor, error) {
	if err := ctx.Err(); err != nil {
		return domain.Executor{}, err
	}

	var file executorFileSchema
	if err := s.readSchema(executorFile, &file); err != nil {
		return domain.Executor{}, fmt.Errorf("fetch executor: %w", err)
	}
	file.applyDefaults()
	if err := file.validateVersion(); err != nil {
		return domain.Executor{}, fmt.Errorf("fetch executor: %w", err)
	}

	s.logger.Debug().Str("dir", s.dataDir).Msg("executor snapshot read")

	return executorFromSchema(file.Executor), nil
}

func (s *Source) readSchema(name string, out any) error {
	path := filepath.Join(s.dataDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("snapshot file %s not found", path)
		}
		return fmt.Errorf("read snapshot file: %w", err)
	}

	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode snapshot file %s: %w", name, err)
	}

	return nil
}

func clientFromSchema(entry clientSchema) domain.Client {
	var demands []domain.Demand
	if entry.Demands != nil {
		demands = make([]domain.Demand, 0, len(entry.Demands))
		for _, tag := range entry.Demands {
			demands = append(demands, domain.Demand(tag))
		}
	}

	return domain.Client{
		Name:     entry.Name,
		Position: domain.Position{X: entry.Position.X, Y: entry.Position.Y},
		Reward:   decimal.NewFromFloat(entry.Reward),
		Demands:  demands,
	}
}

func executorFromSchema(entry executorSchema) domain.Executor {
	possibilities := make([]domain.Demand, 0, len(entry.Possibilities))
	for _, tag := range entry.Possibilities {
		possibilities = append(possibilities, domain.Demand(tag))
	}

	return domain.Executor{
		Position:      domain.Position{X: entry.Position.X, Y: entry.Position.Y},
		Possibilities: possibilities,
	}
}
