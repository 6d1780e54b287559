package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dinkwell/dinkwell/internal/skill"
)

// defaultEffortRating is used when a practice entry omits the rating part.
const defaultEffortRating = 3

// ParsePracticeEntry parses one "skill=minutes" or "skill=minutes:rating"
// argument, e.g. "serve=30:4".
func ParsePracticeEntry(arg string) (skill.PracticeEntry, error) {
	name, rest, ok := strings.Cut(arg, "=")
	if !ok {
		return skill.PracticeEntry{}, fmt.Errorf("invalid practice entry %q, expected skill=minutes[:rating]", arg)
	}
	id := skill.ID(strings.TrimSpace(name))
	if !id.Valid() {
		return skill.PracticeEntry{}, fmt.Errorf("unknown skill %q", name)
	}

	minutesPart, ratingPart, hasRating := strings.Cut(rest, ":")
	minutes, err := strconv.Atoi(strings.TrimSpace(minutesPart))
	if err != nil {
		return skill.PracticeEntry{}, fmt.Errorf("invalid minutes in %q: %w", arg, err)
	}
	rating := defaultEffortRating
	if hasRating {
		rating, err = strconv.Atoi(strings.TrimSpace(ratingPart))
		if err != nil {
			return skill.PracticeEntry{}, fmt.Errorf("invalid rating in %q: %w", arg, err)
		}
	}

	entry := skill.PracticeEntry{SkillID: id, Minutes: minutes, Rating: rating}
	if err := entry.Validate(); err != nil {
		return skill.PracticeEntry{}, err
	}
	return entry, nil
}

// ParsePracticeEntries parses a list of practice entry arguments.
func ParsePracticeEntries(args []string) ([]skill.PracticeEntry, error) {
	entries := make([]skill.PracticeEntry, 0, len(args))
	for _, arg := range args {
		entry, err := ParsePracticeEntry(arg)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
