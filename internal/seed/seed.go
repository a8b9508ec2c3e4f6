// Package seed loads the static fixtures every dashboard view starts from.
// The fixtures are embedded into the binary; they are decoded once and cloned per session.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"gigdesk/backend/internal/config"
	"gigdesk/backend/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// ErrInvalidFixtures is wrapped by every ValidationError.
var ErrInvalidFixtures = errors.New("invalid fixtures")

// ValidationError describes the first broken invariant found in the fixtures.
type ValidationError struct {
	Collection string
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("seed: %s: %s", e.Collection, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidFixtures
}

// Fixtures is the complete seed state of the dashboard.
type Fixtures struct {
	Conversations []models.Conversation `yaml:"conversations"`
	Thread        []models.Message      `yaml:"thread"`
	Gigs          []models.Gig          `yaml:"gigs"`
	Earnings      []models.EarningPoint `yaml:"earnings"`
	Cards         []models.SummaryCard  `yaml:"cards"`
	Profile       models.Profile        `yaml:"profile"`
	Settings      models.Settings       `yaml:"settings"`
}

// Load decodes and validates the embedded fixtures.
func Load() (*Fixtures, error) {
	return Parse(fixturesYAML)
}

// Parse decodes and validates fixtures from raw YAML.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks id uniqueness per collection and the enum values.
func (f *Fixtures) Validate() error {
	seen := make(map[int]bool)
	for _, c := range f.Conversations {
		if seen[c.ID] {
			return &ValidationError{"conversations", fmt.Sprintf("duplicate id %d", c.ID)}
		}
		seen[c.ID] = true
		if !c.Status.Valid() {
			return &ValidationError{"conversations", fmt.Sprintf("id %d has unknown status %q", c.ID, c.Status)}
		}
		if c.UnreadCount < 0 {
			return &ValidationError{"conversations", fmt.Sprintf("id %d has negative unread count", c.ID)}
		}
	}
	if len(f.Conversations) == 0 {
		return &ValidationError{"conversations", "at least one conversation is required"}
	}

	clear(seen)
	for _, m := range f.Thread {
		if seen[m.ID] {
			return &ValidationError{"thread", fmt.Sprintf("duplicate id %d", m.ID)}
		}
		seen[m.ID] = true
		if m.Sender != models.SenderMe && m.Sender != models.SenderClient {
			return &ValidationError{"thread", fmt.Sprintf("id %d has unknown sender %q", m.ID, m.Sender)}
		}
	}

	clear(seen)
	for _, g := range f.Gigs {
		if seen[g.ID] {
			return &ValidationError{"gigs", fmt.Sprintf("duplicate id %d", g.ID)}
		}
		seen[g.ID] = true
		if !g.Status.Valid() {
			return &ValidationError{"gigs", fmt.Sprintf("id %d has unknown status %q", g.ID, g.Status)}
		}
	}

	clear(seen)
	for _, p := range f.Profile.Portfolio {
		if seen[p.ID] {
			return &ValidationError{"portfolio", fmt.Sprintf("duplicate id %d", p.ID)}
		}
		seen[p.ID] = true
	}

	if !config.SupportedThemes[f.Settings.Theme] {
		return &ValidationError{"settings", fmt.Sprintf("unknown theme %q", f.Settings.Theme)}
	}
	for key := range f.Settings.Notifications {
		if !slices.Contains(config.NotificationChannels, key) {
			return &ValidationError{"settings", fmt.Sprintf("unknown notification channel %q", key)}
		}
	}
	return nil
}

// Clone returns a deep copy so that callers can mutate it freely.
func (f *Fixtures) Clone() *Fixtures {
	out := &Fixtures{
		Conversations: slices.Clone(f.Conversations),
		Thread:        slices.Clone(f.Thread),
		Gigs:          slices.Clone(f.Gigs),
		Earnings:      slices.Clone(f.Earnings),
		Cards:         slices.Clone(f.Cards),
		Profile:       f.Profile,
		Settings:      models.Settings{Theme: f.Settings.Theme},
	}

	out.Profile.Skills = slices.Clone(f.Profile.Skills)
	out.Profile.Languages = slices.Clone(f.Profile.Languages)
	out.Profile.Portfolio = make([]models.PortfolioItem, len(f.Profile.Portfolio))
	for i, item := range f.Profile.Portfolio {
		item.Technologies = slices.Clone(item.Technologies)
		out.Profile.Portfolio[i] = item
	}

	out.Settings.Notifications = make(map[string]bool, len(f.Settings.Notifications))
	for k, v := range f.Settings.Notifications {
		out.Settings.Notifications[k] = v
	}
	return out
}
