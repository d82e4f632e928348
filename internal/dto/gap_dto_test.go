package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitContributors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"single name", "Alice", []string{"Alice"}},
		{"two names", "Alice,Bob", []string{"Alice", "Bob"}},
		{"surrounding whitespace", "  Alice ,  Bob  ", []string{"Alice", "Bob"}},
		{"empty segments dropped", "Alice,, ,Bob,", []string{"Alice", "Bob"}},
		{"names with spaces kept intact", "Alice Smith, Bob Lee", []string{"Alice Smith", "Bob Lee"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitContributors(tt.raw))
		})
	}
}

func TestContributorListAcceptsStringOrArray(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    ContributorList
		wantErr bool
	}{
		{"comma string", `"Alice, Bob"`, ContributorList{"Alice", "Bob"}, false},
		{"array", `["Alice", "Bob"]`, ContributorList{"Alice", "Bob"}, false},
		{"array with padding and blanks", `[" Alice ", "", "Bob"]`, ContributorList{"Alice", "Bob"}, false},
		{"empty string", `""`, ContributorList{}, false},
		{"null stays empty", `null`, ContributorList{}, false},
		{"number rejected", `42`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ContributorList
			err := json.Unmarshal([]byte(tt.payload), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
