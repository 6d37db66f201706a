// Package catalog holds the portfolio content loaded once at startup and
// exposes pure, read-only accessors over it.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vicdevman/portfolio-api/internal/catalog/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// Document is the on-disk shape of a catalog file.
type Document struct {
	Owner           domain.Owner           `yaml:"owner"`
	SkillCategories []domain.SkillCategory `yaml:"skill_categories"`
	Skills          []domain.Skill         `yaml:"skills"`
	Projects        []domain.Project       `yaml:"projects"`
	Experiences     []domain.Experience    `yaml:"experiences"`
}

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	owner           domain.Owner
	skillCategories []domain.SkillCategory
	skills          []domain.Skill
	projects        []domain.Project
	experiences     []domain.Experience

	projectIdx    map[string]int
	experienceIdx map[string]int
	skillIdx      map[string]int
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(embeddedCatalog))
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates a catalog document. Unknown fields are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode catalog: empty document")
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc)
}

// New validates doc and builds a Catalog from a private copy of it.
func New(doc Document) (*Catalog, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	c := &Catalog{
		owner:         doc.Owner.Clone(),
		projectIdx:    make(map[string]int, len(doc.Projects)),
		experienceIdx: make(map[string]int, len(doc.Experiences)),
		skillIdx:      make(map[string]int, len(doc.Skills)),
	}
	c.skillCategories = append([]domain.SkillCategory{}, doc.SkillCategories...)
	for i, p := range doc.Projects {
		c.projects = append(c.projects, p.Clone())
		c.projectIdx[p.ID] = i
	}
	for i, e := range doc.Experiences {
		c.experiences = append(c.experiences, e.Clone())
		c.experienceIdx[e.ID] = i
	}
	for i, s := range doc.Skills {
		c.skills = append(c.skills, s.Clone())
		c.skillIdx[s.ID] = i
	}
	return c, nil
}

// Validate checks the catalog invariants and returns every violation found.
func Validate(doc Document) error {
	var errs []error

	seen := map[string]bool{}
	for i, p := range doc.Projects {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: id is required", i))
			continue
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("projects[%d]: duplicate id %q", i, p.ID))
		}
		seen[p.ID] = true
		if _, err := time.Parse("2006-01", p.CompletionDate); err != nil {
			errs = append(errs, fmt.Errorf("project %q: completion_date %q is not YYYY-MM", p.ID, p.CompletionDate))
		}
	}

	seen = map[string]bool{}
	for i, e := range doc.Experiences {
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("experiences[%d]: id is required", i))
			continue
		}
		if seen[e.ID] {
			errs = append(errs, fmt.Errorf("experiences[%d]: duplicate id %q", i, e.ID))
		}
		seen[e.ID] = true
	}

	seen = map[string]bool{}
	for i, s := range doc.Skills {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("skills[%d]: id is required", i))
			continue
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("skills[%d]: duplicate id %q", i, s.ID))
		}
		seen[s.ID] = true
		if s.Proficiency < 1 || s.Proficiency > 5 {
			errs = append(errs, fmt.Errorf("skill %q: proficiency %d outside [1,5]", s.ID, s.Proficiency))
		}
	}

	seen = map[string]bool{}
	for i, sc := range doc.SkillCategories {
		if sc.ID == "" {
			errs = append(errs, fmt.Errorf("skill_categories[%d]: id is required", i))
			continue
		}
		if seen[sc.ID] {
			errs = append(errs, fmt.Errorf("skill_categories[%d]: duplicate id %q", i, sc.ID))
		}
		seen[sc.ID] = true
	}

	return errors.Join(errs...)
}

// Warnings reports soft problems that do not prevent loading, such as skills
// tagged with a category id that no skill category declares.
func (c *Catalog) Warnings() []string {
	known := make(map[string]bool, len(c.skillCategories))
	for _, sc := range c.skillCategories {
		known[sc.ID] = true
	}
	var out []string
	for _, s := range c.skills {
		for _, tag := range s.Category {
			if !known[tag] {
				out = append(out, fmt.Sprintf("skill %q: unknown category %q", s.ID, tag))
			}
		}
	}
	return out
}
