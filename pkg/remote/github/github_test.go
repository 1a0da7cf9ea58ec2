package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepo(t *testing.T) {
	tests := []struct {
		name      string
		repo      string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{
			name:      "full_url",
			repo:      "github.com/walteh/mappings",
			wantOwner: "walteh",
			wantName:  "mappings",
		},
		{
			name:      "owner_and_name",
			repo:      "walteh/mappings",
			wantOwner: "walteh",
			wantName:  "mappings",
		},
		{
			name:    "missing_owner",
			repo:    "mappings",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, name, err := parseRepo(tt.repo)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner, "owner should match")
			assert.Equal(t, tt.wantName, name, "name should match")
		})
	}
}
