// Package testutil provides shared test helpers for creating config files and
// catalog fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dinkwell/dinkwell/internal/coaching"
	"github.com/dinkwell/dinkwell/internal/session"
)

// SetupTestConfig creates a minimal config file and all required directories
// for testing. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "reports"), 0755))

	configContent := fmt.Sprintf(`server:
  port: 8080
progress:
  file: %s
outputs:
  report_directory: %s
remote:
  base_url: http://localhost:8080
`,
		filepath.Join(tmpDir, "progress.yml"),
		filepath.Join(tmpDir, "reports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// TestCatalog builds a small two-level catalog: an unlocked first level with
// two modules and a locked second level with one module.
func TestCatalog(t *testing.T) *coaching.Catalog {
	t.Helper()

	catalog := &coaching.Catalog{
		Levels: []coaching.Level{
			{
				ID:    "basics",
				Title: "Basics",
				Order: 0,
				Modules: []coaching.Module{
					{ID: "basics-grip", Type: coaching.ModuleVideo, Title: "Grip", EstMinutes: 5},
					{ID: "basics-dink", Type: coaching.ModuleDrill, Title: "Dink Rally", EstMinutes: 15},
				},
			},
			{
				ID:              "intermediate",
				Title:           "Intermediate",
				Order:           1,
				LockedByDefault: true,
				Modules: []coaching.Module{
					{ID: "inter-thirdshot", Type: coaching.ModuleVideo, Title: "Third Shot Drop", EstMinutes: 10},
				},
			},
		},
	}
	require.NoError(t, catalog.Validate())
	return catalog
}

// Sessions builds one session per (date, minutes) pair for a fixed user, in
// the local time zone.
func Sessions(t *testing.T, userID string, days map[string]int) []session.Session {
	t.Helper()

	var sessions []session.Session
	for day, minutes := range days {
		date, err := time.ParseInLocation("2006-01-02", day, time.Local)
		require.NoError(t, err)
		sessions = append(sessions, session.Session{
			UserID:  userID,
			Date:    date,
			Minutes: minutes,
			Focus:   session.FocusDrills,
		})
	}
	return sessions
}
