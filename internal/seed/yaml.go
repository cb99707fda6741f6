// Copyright Niklas Bubeck, 2026. All rights reserved.

package seed

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/nbubeck/scholar-page/pkg/types"
)

// rosterFile is the YAML roster layout: a top-level publications list.
type rosterFile struct {
	Publications []types.PublicationRecord `yaml:"publications"`
}

// FromYAML loads a roster from a YAML file and applies the standard field
// fallbacks, so hand-written rosters may omit anything but the title.
func FromYAML(path string) ([]types.PublicationRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed roster: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing seed roster %s: %w", path, err)
	}

	records := make([]types.PublicationRecord, 0, len(file.Publications))
	for _, rec := range file.Publications {
		if rec.Authors == "" {
			rec.Authors = "Unknown"
		}
		if rec.Venue == "" {
			rec.Venue = "Unknown Venue"
		}
		if rec.Link == "" {
			rec.Link = types.NoLink
		}
		if rec.PublicationURL == "" {
			rec.PublicationURL = types.NoLink
		}
		if rec.SemanticScholarURL == "" {
			rec.SemanticScholarURL = types.NoLink
		}
		if rec.CitedBy < 0 {
			rec.CitedBy = 0
		}
		records = append(records, rec)
	}

	return records, nil
}
