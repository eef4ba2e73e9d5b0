package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantDesc string
		wantTags []string
	}{
		{
			name:     "no tags",
			args:     []string{"Buy", "milk"},
			wantDesc: "Buy milk",
			wantTags: nil,
		},
		{
			name:     "trailing tag",
			args:     []string{"Fix", "the", "boiler", "@home"},
			wantDesc: "Fix the boiler",
			wantTags: []string{"home"},
		},
		{
			name:     "tag in the middle",
			args:     []string{"Call", "@work", "about", "contract"},
			wantDesc: "Call about contract",
			wantTags: []string{"work"},
		},
		{
			name:     "quoted argument with tag inside",
			args:     []string{"Fix the boiler @home @urgent"},
			wantDesc: "Fix the boiler",
			wantTags: []string{"home", "urgent"},
		},
		{
			name:     "lone at-sign stays in description",
			args:     []string{"Meet", "@", "noon"},
			wantDesc: "Meet @ noon",
			wantTags: nil,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			desc, tags := splitDescription(tc.args)
			assert.Equal(t, tc.wantDesc, desc)
			assert.Equal(t, tc.wantTags, tags)
		})
	}
}
