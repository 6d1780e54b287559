package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinkwell/dinkwell/internal/session"
)

type stubSessionRepository struct {
	sessions []session.Session
	err      error
}

func (r *stubSessionRepository) Create(_ context.Context, s *session.Session) error {
	if r.err != nil {
		return r.err
	}
	s.ID = int64(len(r.sessions) + 1)
	r.sessions = append(r.sessions, *s)
	return nil
}

func (r *stubSessionRepository) FindByUser(_ context.Context, _ string) ([]session.Session, error) {
	return r.sessions, r.err
}

func (r *stubSessionRepository) FindByUserBetween(_ context.Context, _ string, _, _ time.Time) ([]session.Session, error) {
	return r.sessions, r.err
}

func TestRunStreakReport(t *testing.T) {
	color.NoColor = true
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("shows current and best streaks", func(t *testing.T) {
		sessions := &stubSessionRepository{
			sessions: []session.Session{
				{UserID: "user-1", Date: now.AddDate(0, 0, -1), Minutes: 30, Focus: session.FocusDrills},
				{UserID: "user-1", Date: now, Minutes: 25, Focus: session.FocusDinks},
			},
		}

		var out bytes.Buffer
		err := RunStreakReport(context.Background(), sessions, "user-1", now, &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Current streak: 2 day(s)")
		assert.Contains(t, out.String(), "Best streak:    2 day(s)")
		assert.Contains(t, out.String(), "2026-03-15")
	})

	t.Run("nudges when there is no streak", func(t *testing.T) {
		var out bytes.Buffer
		err := RunStreakReport(context.Background(), &stubSessionRepository{}, "user-1", now, &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Current streak: 0 days")
	})

	t.Run("repository errors surface", func(t *testing.T) {
		sessions := &stubSessionRepository{err: fmt.Errorf("connection refused")}

		var out bytes.Buffer
		err := RunStreakReport(context.Background(), sessions, "user-1", now, &out)

		assert.ErrorContains(t, err, "connection refused")
	})
}
