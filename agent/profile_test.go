package agent

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuiltinProfilesValidate(t *testing.T) {
	profiles := BuiltinProfiles()
	require.Contains(t, profiles, "balanced")
	require.Contains(t, profiles, "aggressive")
	require.Contains(t, profiles, "blitz")
	for name, p := range profiles {
		require.NoError(t, p.Validate(), "builtin %q", name)
	}
}

func TestLoadProfiles(t *testing.T) {
	doc := `
- name: tournament
  weights:
    advance: 12
    goal: 45
    mobility: 4
    pads: 2
  max_depth: 24
  budget: 2s
  parallelism: 4
  table_size: 65536
- name: fuzzer
  weights:
    advance: 10
    goal: 40
    mobility: 3
    pads: 1
  max_depth: 6
  budget: 200ms
  seed: 42
`
	profiles, err := LoadProfiles(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	tournament := profiles["tournament"]
	require.Equal(t, 12, tournament.Weights.Advance)
	require.Equal(t, 24, tournament.MaxDepth)
	require.Equal(t, 2*time.Second, tournament.Budget)
	require.Equal(t, 4, tournament.Parallelism)

	require.Equal(t, uint64(42), profiles["fuzzer"].Seed)
}

func TestLoadProfilesRejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing name", "- max_depth: 3\n  budget: 1s\n"},
		{"zero depth", "- name: x\n  max_depth: 0\n  budget: 1s\n"},
		{"zero budget", "- name: x\n  max_depth: 3\n"},
		{"negative weight", "- name: x\n  max_depth: 3\n  budget: 1s\n  weights: {advance: -1}\n"},
		{"duplicate", "- name: x\n  max_depth: 3\n  budget: 1s\n- name: x\n  max_depth: 3\n  budget: 1s\n"},
		{"not yaml", "creek: ["},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadProfiles(strings.NewReader(tc.doc))
			require.Error(t, err)
		})
	}
}
