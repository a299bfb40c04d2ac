package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/riskibarqy/scouting-board/internal/domain/formation"
	"gopkg.in/yaml.v3"
)

type layoutsFile struct {
	Layouts []layoutEntry `yaml:"layouts"`
}

type layoutEntry struct {
	Name      string          `yaml:"name"`
	Positions []positionEntry `yaml:"positions"`
}

type positionEntry struct {
	ID    string  `yaml:"id"`
	Label string  `yaml:"label"`
	Top   float64 `yaml:"top"`
	Left  float64 `yaml:"left"`
}

// LoadLayouts reads extra formation presets from a YAML file. An empty path
// yields no presets.
func LoadLayouts(path string) ([]formation.Preset, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layouts file %s: %w", path, err)
	}
	return ParseLayouts(raw)
}

func ParseLayouts(raw []byte) ([]formation.Preset, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	var file layoutsFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode layouts: %w", err)
	}

	presets := make([]formation.Preset, 0, len(file.Layouts))
	for i, entry := range file.Layouts {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, fmt.Errorf("layout #%d: name is required", i+1)
		}
		if len(entry.Positions) == 0 {
			return nil, fmt.Errorf("layout %s: at least one position is required", name)
		}

		positions := make([]formation.Position, 0, len(entry.Positions))
		for _, p := range entry.Positions {
			positions = append(positions, formation.Position{
				ID:    strings.TrimSpace(p.ID),
				Label: strings.TrimSpace(p.Label),
				Top:   p.Top,
				Left:  p.Left,
			})
		}
		presets = append(presets, formation.Preset{Name: name, Positions: positions})
	}
	return presets, nil
}
