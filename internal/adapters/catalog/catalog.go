package catalog

import (
	_ "embed"
	"fmt"
	"route-planner-service/internal/domain"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed recommendations.toml
var defaultTable string

type file struct {
	City []struct {
		Name  string   `toml:"name"`
		Spots []string `toml:"spots"`
	} `toml:"city"`
}

// Catalog is an immutable city -> spots table loaded from TOML.
type Catalog struct {
	cities []domain.City
}

// Default returns the built-in table.
func Default() (*Catalog, error) {
	var f file
	md, err := toml.Decode(defaultTable, &f)
	if err != nil {
		return nil, fmt.Errorf("load default recommendations: %w", err)
	}
	return build(f, md, "built-in table")
}

// Load reads a table from path, or the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}

	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("load recommendations %q: %w", path, err)
	}
	return build(f, md, path)
}

func build(f file, md toml.MetaData, source string) (*Catalog, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load recommendations %s: unknown keys %v", source, undecoded)
	}

	seen := make(map[string]struct{}, len(f.City))
	c := &Catalog{cities: make([]domain.City, 0, len(f.City))}
	for i, city := range f.City {
		name := strings.TrimSpace(city.Name)
		if name == "" {
			return nil, fmt.Errorf("load recommendations %s: city #%d has no name", source, i+1)
		}
		if _, dup := seen[strings.ToLower(name)]; dup {
			return nil, fmt.Errorf("load recommendations %s: duplicate city %q", source, name)
		}
		seen[strings.ToLower(name)] = struct{}{}

		if len(city.Spots) == 0 {
			return nil, fmt.Errorf("load recommendations %s: city %q has no spots", source, name)
		}
		spots := make([]string, len(city.Spots))
		copy(spots, city.Spots)
		c.cities = append(c.cities, domain.City{Name: name, Spots: spots})
	}
	return c, nil
}

// Cities returns the table in file order.
func (c *Catalog) Cities() []domain.City {
	out := make([]domain.City, len(c.cities))
	copy(out, c.cities)
	return out
}

func (c *Catalog) City(name string) (domain.City, bool) {
	for _, city := range c.cities {
		if strings.EqualFold(city.Name, strings.TrimSpace(name)) {
			return city, true
		}
	}
	return domain.City{}, false
}
