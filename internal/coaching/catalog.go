// Package coaching models the coaching curriculum catalog and tracks a
// user's progress through its levels.
package coaching

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ModuleType classifies the content of a coaching module.
type ModuleType string

const (
	ModuleVideo   ModuleType = "video"
	ModuleDrill   ModuleType = "drill"
	ModuleReading ModuleType = "reading"
)

// DrillSpec describes how a drill module is performed.
type DrillSpec struct {
	Sets            int      `yaml:"sets,omitempty" json:"sets,omitempty"`
	Reps            int      `yaml:"reps,omitempty" json:"reps,omitempty"`
	Equipment       []string `yaml:"equipment,omitempty" json:"equipment,omitempty"`
	SuccessCriteria string   `yaml:"success_criteria,omitempty" json:"successCriteria,omitempty"`
}

// Module is the smallest unit of curriculum content that can be marked
// complete. Modules are immutable catalog data, not user state.
type Module struct {
	ID         string     `yaml:"id" json:"id" validate:"required"`
	Type       ModuleType `yaml:"type" json:"type" validate:"required,oneof=video drill reading"`
	Title      string     `yaml:"title" json:"title" validate:"required"`
	Summary    string     `yaml:"summary,omitempty" json:"summary,omitempty"`
	EstMinutes int        `yaml:"est_minutes" json:"estMinutes" validate:"gt=0"`
	VideoURL   string     `yaml:"video_url,omitempty" json:"videoUrl,omitempty"`
	ReadingURL string     `yaml:"reading_url,omitempty" json:"readingUrl,omitempty"`
	Drill      *DrillSpec `yaml:"drill,omitempty" json:"drill,omitempty"`
}

// Level is an ordered, lockable grouping of modules.
type Level struct {
	ID              string   `yaml:"id" json:"id" validate:"required"`
	Title           string   `yaml:"title" json:"title" validate:"required"`
	Subtitle        string   `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Order           int      `yaml:"order" json:"order" validate:"gte=0"`
	LockedByDefault bool     `yaml:"locked_by_default" json:"lockedByDefault"`
	Modules         []Module `yaml:"modules" json:"modules" validate:"dive"`
}

// Catalog holds the full curriculum. Levels are kept sorted by order.
type Catalog struct {
	Levels []Level `yaml:"levels" validate:"required,min=1,dive"`
}

// ParseCatalog decodes and validates a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(catalog) > %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(catalog.Levels, func(i, j int) bool {
		return catalog.Levels[i].Order < catalog.Levels[j].Order
	})
	return &catalog, nil
}

// Validate checks the structural rules the progress state machine relies on:
// non-empty unique ids and level orders that are contiguous from 0.
func (c *Catalog) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	levelIDs := make(map[string]struct{}, len(c.Levels))
	moduleIDs := make(map[string]struct{})
	orders := make(map[int]struct{}, len(c.Levels))
	for _, level := range c.Levels {
		if _, ok := levelIDs[level.ID]; ok {
			return fmt.Errorf("duplicate level id %q", level.ID)
		}
		levelIDs[level.ID] = struct{}{}
		if _, ok := orders[level.Order]; ok {
			return fmt.Errorf("duplicate level order %d", level.Order)
		}
		orders[level.Order] = struct{}{}
		for _, module := range level.Modules {
			if _, ok := moduleIDs[module.ID]; ok {
				return fmt.Errorf("duplicate module id %q", module.ID)
			}
			moduleIDs[module.ID] = struct{}{}
		}
	}
	for i := 0; i < len(c.Levels); i++ {
		if _, ok := orders[i]; !ok {
			return fmt.Errorf("level orders must be contiguous from 0, missing order %d", i)
		}
	}
	return nil
}

// LevelByID returns the level with the given id.
func (c *Catalog) LevelByID(id string) (Level, bool) {
	for _, level := range c.Levels {
		if level.ID == id {
			return level, true
		}
	}
	return Level{}, false
}

// LevelByOrder returns the level at the given order position.
func (c *Catalog) LevelByOrder(order int) (Level, bool) {
	for _, level := range c.Levels {
		if level.Order == order {
			return level, true
		}
	}
	return Level{}, false
}

// ModuleByID returns a module and the level that owns it.
func (c *Catalog) ModuleByID(id string) (Module, Level, bool) {
	for _, level := range c.Levels {
		for _, module := range level.Modules {
			if module.ID == id {
				return module, level, true
			}
		}
	}
	return Module{}, Level{}, false
}

// AllModules returns every module in curriculum order: levels by ascending
// order, modules in catalog order within each level.
func (c *Catalog) AllModules() []Module {
	var modules []Module
	for _, level := range c.Levels {
		modules = append(modules, level.Modules...)
	}
	return modules
}

// FirstLevel returns the lowest-order level.
func (c *Catalog) FirstLevel() Level {
	return c.Levels[0]
}
