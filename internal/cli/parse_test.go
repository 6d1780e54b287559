package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinkwell/dinkwell/internal/skill"
)

func TestParsePracticeEntry(t *testing.T) {
	testCases := []struct {
		name    string
		arg     string
		want    skill.PracticeEntry
		wantErr string
	}{
		{
			name: "skill with minutes and rating",
			arg:  "serve=30:4",
			want: skill.PracticeEntry{SkillID: skill.Serve, Minutes: 30, Rating: 4},
		},
		{
			name: "omitted rating defaults to neutral",
			arg:  "dink=45",
			want: skill.PracticeEntry{SkillID: skill.Dink, Minutes: 45, Rating: 3},
		},
		{
			name: "whitespace is tolerated",
			arg:  "footwork = 20 : 5",
			want: skill.PracticeEntry{SkillID: skill.Footwork, Minutes: 20, Rating: 5},
		},
		{
			name:    "missing equals sign",
			arg:     "serve",
			wantErr: "expected skill=minutes[:rating]",
		},
		{
			name:    "unknown skill",
			arg:     "juggling=30",
			wantErr: `unknown skill "juggling"`,
		},
		{
			name:    "non-numeric minutes",
			arg:     "serve=lots",
			wantErr: "invalid minutes",
		},
		{
			name:    "non-numeric rating",
			arg:     "serve=30:high",
			wantErr: "invalid rating",
		},
		{
			name:    "zero minutes rejected",
			arg:     "serve=0",
			wantErr: "minutes must be positive",
		},
		{
			name:    "out of range rating rejected",
			arg:     "serve=30:6",
			wantErr: "rating must be between 1 and 5",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePracticeEntry(tc.arg)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePracticeEntries(t *testing.T) {
	t.Run("parses every argument", func(t *testing.T) {
		got, err := ParsePracticeEntries([]string{"serve=30:4", "dink=20"})

		require.NoError(t, err)
		assert.Equal(t, []skill.PracticeEntry{
			{SkillID: skill.Serve, Minutes: 30, Rating: 4},
			{SkillID: skill.Dink, Minutes: 20, Rating: 3},
		}, got)
	})

	t.Run("one bad argument fails the whole list", func(t *testing.T) {
		_, err := ParsePracticeEntries([]string{"serve=30", "nope"})

		assert.ErrorContains(t, err, "expected skill=minutes[:rating]")
	})
}
