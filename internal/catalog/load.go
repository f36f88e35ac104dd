package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"arcade-roulette-service/internal/domain/games"
)

// LoadFile reads a YAML catalogue from disk and validates it.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return New(records)
}

// Parse decodes YAML bytes into a game list.
func Parse(data []byte) ([]games.Game, error) {
	if len(data) == 0 {
		return []games.Game{}, nil
	}
	var records []games.Game
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	if records == nil {
		return []games.Game{}, nil
	}
	return records, nil
}

// Marshal encodes a game list to YAML bytes.
func Marshal(list []games.Game) ([]byte, error) {
	data, err := yaml.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return data, nil
}
