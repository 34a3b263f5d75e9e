package agent

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jnakos01/freckers2/game"
	"github.com/jnakos01/freckers2/searcher"
)

// Profile is an agent personality: evaluation weights plus search
// limits. Profiles are a closed set of configurations selected at
// construction time; they can be loaded from a YAML file or taken from
// the built-ins.
type Profile struct {
	Name        string        `yaml:"name"`
	Weights     game.Weights  `yaml:"weights"`
	MaxDepth    int           `yaml:"max_depth"`
	Budget      time.Duration `yaml:"budget"`
	Parallelism int           `yaml:"parallelism"`
	TableSize   int           `yaml:"table_size"`
	// Seed enables seeded root shuffling for tie-break variety. Zero
	// keeps the searcher fully deterministic.
	Seed uint64 `yaml:"seed"`
}

// Balanced is the default profile: the standard weights with a one
// second budget.
func Balanced() Profile {
	return Profile{
		Name:      "balanced",
		Weights:   game.DefaultWeights(),
		MaxDepth:  32,
		Budget:    time.Second,
		TableSize: 1 << 18,
	}
}

// Aggressive leans on jump mobility and raw advancement.
func Aggressive() Profile {
	p := Balanced()
	p.Name = "aggressive"
	p.Weights = game.Weights{Advance: 14, Goal: 30, Mobility: 6, Pads: 1}
	return p
}

// Blitz plays shallow and fast; useful for quick matches and tests.
func Blitz() Profile {
	p := Balanced()
	p.Name = "blitz"
	p.MaxDepth = 4
	p.Budget = 100 * time.Millisecond
	p.TableSize = 1 << 14
	return p
}

// BuiltinProfiles returns the built-in personalities keyed by name.
func BuiltinProfiles() map[string]Profile {
	profiles := map[string]Profile{}
	for _, p := range []Profile{Balanced(), Aggressive(), Blitz()} {
		profiles[p.Name] = p
	}
	return profiles
}

// UnmarshalYAML accepts budgets in time.ParseDuration notation
// ("200ms", "2s"), which yaml.v3 does not decode into a Duration on
// its own.
func (p *Profile) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name        string       `yaml:"name"`
		Weights     game.Weights `yaml:"weights"`
		MaxDepth    int          `yaml:"max_depth"`
		Budget      string       `yaml:"budget"`
		Parallelism int          `yaml:"parallelism"`
		TableSize   int          `yaml:"table_size"`
		Seed        uint64       `yaml:"seed"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = Profile{
		Name:        raw.Name,
		Weights:     raw.Weights,
		MaxDepth:    raw.MaxDepth,
		Parallelism: raw.Parallelism,
		TableSize:   raw.TableSize,
		Seed:        raw.Seed,
	}
	if raw.Budget != "" {
		budget, err := time.ParseDuration(raw.Budget)
		if err != nil {
			return fmt.Errorf("profile %q budget: %w", raw.Name, err)
		}
		p.Budget = budget
	}
	return nil
}

func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile has no name")
	}
	if p.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", p.MaxDepth)
	}
	if p.Budget <= 0 {
		return fmt.Errorf("budget must be positive, got %v", p.Budget)
	}
	if p.Parallelism < 0 {
		return fmt.Errorf("parallelism cannot be negative, got %d", p.Parallelism)
	}
	// Keep heuristic scores safely below the win/loss sentinels.
	for _, w := range []int{p.Weights.Advance, p.Weights.Goal, p.Weights.Mobility, p.Weights.Pads} {
		if w < 0 || w > game.HeuristicBound/1000 {
			return fmt.Errorf("weight %d out of range [0, %d]", w, game.HeuristicBound/1000)
		}
	}
	return nil
}

func (p Profile) newSearcher() *searcher.Searcher {
	options := []searcher.Option{
		searcher.WithMaxDepth(p.MaxDepth),
		searcher.WithBudget(p.Budget),
		searcher.WithWeights(p.Weights),
		searcher.WithTableSize(p.TableSize),
	}
	if p.Parallelism > 1 {
		options = append(options, searcher.WithParallelism(p.Parallelism))
	}
	if p.Seed != 0 {
		options = append(options, searcher.WithSeed(p.Seed))
	}
	return searcher.New(options...)
}

// LoadProfiles parses a YAML profile list and returns the profiles by
// name, validated.
func LoadProfiles(r io.Reader) (map[string]Profile, error) {
	var list []Profile
	if err := yaml.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding profiles: %w", err)
	}
	profiles := make(map[string]Profile, len(list))
	for _, p := range list {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := profiles[p.Name]; dup {
			return nil, fmt.Errorf("duplicate profile %q", p.Name)
		}
		profiles[p.Name] = p
	}
	return profiles, nil
}
