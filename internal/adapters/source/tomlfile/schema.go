package tomlfile

import "fmt"

const currentSchemaVersion = 1

type clientsFileSchema struct {
	Version int            `toml:"version"`
	Clients []clientSchema `toml:"clients"`
}

func (s *clientsFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s clientsFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported clients schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type executorFileSchema struct {
	Version  int            `toml:"version"`
	Executor executorSchema `toml:"executor"`
}

func (s *executorFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s executorFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported executor schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type clientSchema struct {
	Name     string         `toml:"name"`
	Position positionSchema `toml:"position"`
	Reward   float64        `toml:"reward"`
	// An omitted demands key decodes to nil: the client has no requirements.
	Demands []string `toml:"demands,omitempty"`
}

type executorSchema struct {
	Position      positionSchema `toml:"position"`
	Possibilities []string       `toml:"possibilities"`
}

type positionSchema struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}
