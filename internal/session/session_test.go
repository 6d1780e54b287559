package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionValidate(t *testing.T) {
	valid := Session{
		UserID:  "user-1",
		Date:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Minutes: 45,
		Focus:   FocusDrills,
	}

	testCases := []struct {
		name    string
		mutate  func(s *Session)
		wantErr string
	}{
		{
			name:   "valid session",
			mutate: func(s *Session) {},
		},
		{
			name:    "missing user id",
			mutate:  func(s *Session) { s.UserID = "" },
			wantErr: "user id is required",
		},
		{
			name:    "missing date",
			mutate:  func(s *Session) { s.Date = time.Time{} },
			wantErr: "date is required",
		},
		{
			name:    "negative minutes",
			mutate:  func(s *Session) { s.Minutes = -1 },
			wantErr: "minutes must not be negative",
		},
		{
			name:    "unknown focus",
			mutate:  func(s *Session) { s.Focus = "swimming" },
			wantErr: "unknown focus tag",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.mutate(&s)
			err := s.Validate()
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFocusValid(t *testing.T) {
	for _, focus := range AllFocuses() {
		assert.True(t, focus.Valid(), string(focus))
	}
	assert.False(t, Focus("swimming").Valid())
	assert.False(t, Focus("").Valid())
}

func TestStringListScan(t *testing.T) {
	var list StringList
	assert.NoError(t, list.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, list)

	assert.NoError(t, list.Scan(nil))
	assert.Nil(t, list)

	assert.Error(t, list.Scan(42))
}
