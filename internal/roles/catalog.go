// Package roles maps reviewer role names to their approval weights.
package roles

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"article-workflow/internal/domain"
	"article-workflow/internal/validator"
)

// Catalog is an immutable set of roles keyed by name.
type Catalog struct {
	byName map[string]domain.Role
}

type fileEntry struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Weight string `yaml:"weight"`
}

type fileFormat struct {
	Roles []fileEntry `yaml:"roles"`
}

// Default returns the built-in catalog used when no roles file is configured.
func Default() *Catalog {
	c, err := New([]domain.Role{
		{ID: "editor", Name: "Editor", Weight: decimal.NewFromInt(30)},
		{ID: "reviewer", Name: "Reviewer", Weight: decimal.NewFromInt(30)},
		{ID: "chief-editor", Name: "ChiefEditor", Weight: decimal.NewFromInt(70)},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog, rejecting invalid or duplicate entries.
func New(roles []domain.Role) (*Catalog, error) {
	v := validator.NewValidator()
	c := &Catalog{byName: make(map[string]domain.Role, len(roles))}
	for i, r := range roles {
		if err := v.ValidateRole(&r); err != nil {
			return nil, fmt.Errorf("role %d: %w", i, err)
		}
		key := normalize(r.Name)
		if _, ok := c.byName[key]; ok {
			return nil, fmt.Errorf("role %d: duplicate role name %q", i, r.Name)
		}
		r.Weight = domain.RoundPercentage(r.Weight)
		c.byName[key] = r
	}
	return c, nil
}

// Load reads a catalog from a YAML file. An empty path yields Default().
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roles file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog:
//
//	roles:
//	  - id: editor
//	    name: Editor
//	    weight: "30.00"
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse roles file: %w", err)
	}
	if len(f.Roles) == 0 {
		return nil, fmt.Errorf("parse roles file: no roles defined")
	}

	roles := make([]domain.Role, 0, len(f.Roles))
	for i, e := range f.Roles {
		w, err := decimal.NewFromString(strings.TrimSpace(e.Weight))
		if err != nil {
			return nil, fmt.Errorf("role %d: invalid weight %q: %w", i, e.Weight, err)
		}
		id := e.ID
		if id == "" {
			id = strings.ToLower(e.Name)
		}
		roles = append(roles, domain.Role{ID: id, Name: e.Name, Weight: w})
	}
	return New(roles)
}

// Lookup returns the role with the given name, ignoring case.
func (c *Catalog) Lookup(name string) (domain.Role, error) {
	r, ok := c.byName[normalize(name)]
	if !ok {
		return domain.Role{}, fmt.Errorf("%w: %q", domain.ErrUnknownRole, name)
	}
	return r, nil
}

// Roles returns all roles sorted by name.
func (c *Catalog) Roles() []domain.Role {
	out := make([]domain.Role, 0, len(c.byName))
	for _, r := range c.byName {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
