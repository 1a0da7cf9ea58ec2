package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		entries       []Entry
		wantKind      string
		wantKeys      []string
		wantPositions []int
	}{
		{
			name: "valid_table",
			entries: []Entry{
				{Search: "foo", Replace: "bar"},
				{Search: "baz", Replace: "qux"},
			},
		},
		{
			name:    "empty_table",
			entries: nil,
		},
		{
			name: "empty_replace_is_deletion",
			entries: []Entry{
				{Search: "remove-me", Replace: ""},
			},
		},
		{
			name: "empty_search_key",
			entries: []Entry{
				{Search: "foo", Replace: "bar"},
				{Search: "", Replace: "qux"},
			},
			wantKind:      EmptySearchKey,
			wantPositions: []int{1},
		},
		{
			name: "all_empty_search_keys_reported",
			entries: []Entry{
				{Search: "", Replace: "a"},
				{Search: "ok", Replace: "b"},
				{Search: "", Replace: "c"},
			},
			wantKind:      EmptySearchKey,
			wantPositions: []int{0, 2},
		},
		{
			name: "duplicate_search_key",
			entries: []Entry{
				{Search: "foo", Replace: "bar"},
				{Search: "foo", Replace: "qux"},
			},
			wantKind: DuplicateSearchKey,
			wantKeys: []string{"foo"},
		},
		{
			name: "all_duplicates_reported_in_one_pass",
			entries: []Entry{
				{Search: "foo", Replace: "1"},
				{Search: "bar", Replace: "2"},
				{Search: "foo", Replace: "3"},
				{Search: "bar", Replace: "4"},
				{Search: "foo", Replace: "5"},
			},
			wantKind: DuplicateSearchKey,
			wantKeys: []string{"foo", "bar"},
		},
		{
			name: "duplicate_replace_values_allowed_on_primary_path",
			entries: []Entry{
				{Search: "foo", Replace: "same"},
				{Search: "bar", Replace: "same"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Validate(tt.entries)

			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.Equal(t, len(tt.entries), table.Len(), "table should keep all entries")
				assert.Equal(t, tt.entries, append([]Entry(nil), table.Entries()...), "entry order should be preserved")
				return
			}

			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantKind, verr.Kind, "error kind should match")
			assert.Equal(t, tt.wantKeys, verr.Keys, "offending keys should match")
			assert.Equal(t, tt.wantPositions, verr.Positions, "offending positions should match")
			assert.Equal(t, 0, table.Len(), "no table should be produced on failure")
		})
	}
}

func TestValidate_EntriesAreCopied(t *testing.T) {
	entries := []Entry{{Search: "foo", Replace: "bar"}}
	table, err := Validate(entries)
	require.NoError(t, err)

	entries[0].Search = "mutated"
	assert.Equal(t, "foo", table.Entries()[0].Search, "table should not alias caller's slice")
}

func TestValidateReversible(t *testing.T) {
	tests := []struct {
		name     string
		entries  []Entry
		wantKeys []string
	}{
		{
			name: "unique_replace_values",
			entries: []Entry{
				{Search: "foo", Replace: "bar"},
				{Search: "baz", Replace: "qux"},
			},
		},
		{
			name: "duplicate_replace_values",
			entries: []Entry{
				{Search: "foo", Replace: "same"},
				{Search: "bar", Replace: "same"},
				{Search: "baz", Replace: "other"},
			},
			wantKeys: []string{"same"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Validate(tt.entries)
			require.NoError(t, err)

			err = ValidateReversible(table)
			if tt.wantKeys == nil {
				require.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, DuplicateReplaceValue, verr.Kind, "error kind should match")
			assert.Equal(t, tt.wantKeys, verr.Keys, "offending values should match")
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Kind: DuplicateSearchKey, Keys: []string{"foo", "bar"}}
	assert.Contains(t, err.Error(), `"foo"`, "message should name every offending key")
	assert.Contains(t, err.Error(), `"bar"`, "message should name every offending key")

	err = &ValidationError{Kind: EmptySearchKey, Positions: []int{0, 2}}
	assert.Contains(t, err.Error(), "[0, 2]", "message should name every offending position")
}
