// Package places loads point-of-interest datasets from disk.
package places

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"smarttravel/internal/models"
)

// ErrPlaceNotFound is returned when a named place is not in the dataset.
var ErrPlaceNotFound = errors.New("place not found")

// Load reads a JSON array of places from path.
func Load(path string) ([]models.Place, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read places file: %w", err)
	}

	var out []models.Place
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse places JSON: %w", err)
	}

	return out, nil
}

// Find returns the first place with the given name.
func Find(list []models.Place, name string) (models.Place, error) {
	for _, p := range list {
		if p.Name == name {
			return p, nil
		}
	}

	return models.Place{}, fmt.Errorf("%w: %q", ErrPlaceNotFound, name)
}
