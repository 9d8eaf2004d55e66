// Package catalog provides the read-only company list and risk questionnaire a
// wizard session works against.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/epeers/portfolio-wizard/internal/models"
	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
)

//go:embed default_catalog.toml
var defaultCatalog []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is an immutable, id-indexed view of companies and risk questions
type Catalog struct {
	companies   []models.Company
	byID        map[string]models.Company
	questions   []models.RiskQuestion
	questionIdx map[string]models.RiskQuestion
}

type catalogFile struct {
	Companies []models.Company      `toml:"companies"`
	Questions []models.RiskQuestion `toml:"questions"`
}

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a TOML catalog from path, or the built-in catalog when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	log.Infof("Loaded catalog from %s: %d companies, %d questions", path, len(c.companies), len(c.questions))
	return c, nil
}

// Parse decodes and validates a TOML catalog
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		companies:   f.Companies,
		byID:        make(map[string]models.Company, len(f.Companies)),
		questions:   f.Questions,
		questionIdx: make(map[string]models.RiskQuestion, len(f.Questions)),
	}

	for i, co := range f.Companies {
		switch {
		case co.ID == "":
			return nil, fmt.Errorf("%w: companies[%d]: missing id", ErrInvalidCatalog, i)
		case co.MarketCap <= 0:
			return nil, fmt.Errorf("%w: company %s: market_cap must be positive", ErrInvalidCatalog, co.ID)
		case co.Price <= 0:
			return nil, fmt.Errorf("%w: company %s: price must be positive", ErrInvalidCatalog, co.ID)
		case co.DividendYield < 0 || co.Volatility < 0:
			return nil, fmt.Errorf("%w: company %s: dividend_yield and volatility must not be negative", ErrInvalidCatalog, co.ID)
		}
		if _, dup := c.byID[co.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate company id %s", ErrInvalidCatalog, co.ID)
		}
		c.byID[co.ID] = co
	}

	for i, q := range f.Questions {
		if q.ID == "" {
			return nil, fmt.Errorf("%w: questions[%d]: missing id", ErrInvalidCatalog, i)
		}
		if _, dup := c.questionIdx[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %s", ErrInvalidCatalog, q.ID)
		}
		if len(q.Options) != 5 {
			return nil, fmt.Errorf("%w: question %s: expected 5 options, got %d", ErrInvalidCatalog, q.ID, len(q.Options))
		}
		seen := map[int]bool{}
		for _, o := range q.Options {
			if o.Score < 1 || o.Score > 5 || seen[o.Score] {
				return nil, fmt.Errorf("%w: question %s: option scores must be 1..5 and distinct", ErrInvalidCatalog, q.ID)
			}
			seen[o.Score] = true
		}
		c.questionIdx[q.ID] = q
	}

	return c, nil
}

// Company looks a company up by id
func (c *Catalog) Company(id string) (models.Company, bool) {
	co, ok := c.byID[id]
	return co, ok
}

// Companies returns every company in catalog order
func (c *Catalog) Companies() []models.Company {
	return append([]models.Company{}, c.companies...)
}

// Question looks a risk question up by id
func (c *Catalog) Question(id string) (models.RiskQuestion, bool) {
	q, ok := c.questionIdx[id]
	return q, ok
}

// Questions returns the questionnaire in order
func (c *Catalog) Questions() []models.RiskQuestion {
	return append([]models.RiskQuestion{}, c.questions...)
}

// Sectors returns the distinct sectors, sorted
func (c *Catalog) Sectors() []string {
	return c.distinct(func(co models.Company) string { return co.Sector })
}

// Regions returns the distinct regions, sorted
func (c *Catalog) Regions() []string {
	return c.distinct(func(co models.Company) string { return co.Region })
}

func (c *Catalog) distinct(field func(models.Company) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, co := range c.companies {
		v := field(co)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
