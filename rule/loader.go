package rule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
	"gopkg.in/yaml.v3"
)

/* Loader seeds rules from rules.yaml at startup
 * Seeded rules get a stable id derived from their content unless one is given,
 * so restarting the service does not duplicate them.
 */

// Config represents the structure of rules.yaml
type Config struct {
	Rules []RuleConfig `yaml:"rules"`
}

// RuleConfig represents a single rule in the YAML file
type RuleConfig struct {
	ID        string         `yaml:"id"`
	TenantID  string         `yaml:"tenant_id"`
	Trigger   string         `yaml:"trigger"`
	Condition map[string]any `yaml:"condition"`
	Action    map[string]any `yaml:"action"`
	Active    *bool          `yaml:"active"` // Default: true
}

var seedNamespace = uuid.MustParse("6f1d7c1e-3b8a-4a55-9f0e-8d2b8e4f7a10")

// Loader holds the loaded rules
type Loader struct {
	validator *Engine
	rules     []Rule
}

// NewLoader creates a loader validating trigger types against matchers
func NewLoader(matchers *MatcherRegistry) *Loader {
	if matchers == nil {
		matchers = DefaultMatchers()
	}
	return &Loader{
		validator: &Engine{Matchers: matchers},
	}
}

// Load reads and parses the rules file
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading rules file: %w", err)
	}
	return l.Parse(data)
}

// Parse decodes rules YAML and validates every rule
func (l *Loader) Parse(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parsing rules YAML: %w", err)
	}

	now := time.Now().UTC()
	for i, rc := range config.Rules {
		r := Rule{
			ID:          rc.ID,
			TenantID:    rc.TenantID,
			TriggerType: TriggerType(rc.Trigger),
			Condition:   document.Document(rc.Condition).Clone(),
			Action:      document.Document(rc.Action).Clone(),
			Active:      rc.Active == nil || *rc.Active,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if r.Condition == nil {
			r.Condition = document.Document{}
		}
		if r.Action == nil {
			r.Action = document.Document{}
		}

		if err := l.validator.Validate(r); err != nil {
			return fmt.Errorf("validating rule %d: %w", i, err)
		}
		if r.ID == "" {
			id, err := seedID(r)
			if err != nil {
				return fmt.Errorf("deriving id for rule %d: %w", i, err)
			}
			r.ID = id
		}

		l.rules = append(l.rules, r)
	}

	return nil
}

// List returns all loaded rules
func (l *Loader) List() []Rule {
	out := make([]Rule, len(l.rules))
	copy(out, l.rules)
	return out
}

// Seed inserts loaded rules missing from repo and returns how many were inserted
func (l *Loader) Seed(ctx context.Context, repo Repository) (int, error) {
	inserted := 0
	for _, r := range l.rules {
		_, err := repo.Get(ctx, r.TenantID, r.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return inserted, fmt.Errorf("checking rule %s: %w", r.ID, err)
		}
		if err := repo.Insert(ctx, r); err != nil {
			return inserted, fmt.Errorf("seeding rule %s: %w", r.ID, err)
		}
		inserted++
	}
	return inserted, nil
}

func seedID(r Rule) (string, error) {
	key, err := json.Marshal([]any{r.TenantID, r.TriggerType, map[string]any(r.Condition), map[string]any(r.Action)})
	if err != nil {
		return "", err
	}
	return uuid.NewSHA1(seedNamespace, key).String(), nil
}
