package operation

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/remaprc/pkg/config"
)

func TestOperator_Contexts(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.conf": "region = us-west-1; user = brutus",
		"b.conf": "fallback = us-west-1; cluster = citrus-9",
	})

	cfg := &config.Config{
		Mapping: []config.MappingEntry{{Search: "us", Replace: "eu"}},
	}
	op := newTestOperator(t, cfg)

	contexts, err := op.Contexts(ctx, "us", []string{
		filepath.Join(dir, "a.conf"),
		filepath.Join(dir, "b.conf"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"us-west-1", "brutus", "citrus-9"}, contexts,
		"aggregation should keep first-appearance order and dedupe across files")
}

func TestOperator_Contexts_NeverWrites(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.conf": "region = us-west-1"})
	path := filepath.Join(dir, "a.conf")

	cfg := &config.Config{
		Mapping: []config.MappingEntry{{Search: "us", Replace: "eu"}},
	}
	op := newTestOperator(t, cfg)

	_, err := op.Contexts(ctx, "us", []string{path})
	require.NoError(t, err)

	assert.Equal(t, "region = us-west-1", readFile(t, path), "diagnostic must not mutate payloads")
}

func TestOperator_Check(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg: &config.Config{
				Mapping: []config.MappingEntry{{Search: "a", Replace: "b"}},
			},
		},
		{
			name: "duplicate_search_keys",
			cfg: &config.Config{
				Mapping: []config.MappingEntry{
					{Search: "a", Replace: "b"},
					{Search: "a", Replace: "c"},
				},
			},
			wantErr: true,
		},
		{
			name: "reversible_duplicate_replace",
			cfg: &config.Config{
				Mapping: []config.MappingEntry{
					{Search: "a", Replace: "same"},
					{Search: "b", Replace: "same"},
				},
				Reversible: true,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := newTestOperator(t, tt.cfg)
			err := op.Check(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
