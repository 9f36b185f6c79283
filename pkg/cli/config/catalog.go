package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
)

// Catalog holds the path of the reference collections file
type Catalog struct {
	path string
}

// Flags returns CLI flags for the catalog file
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to the catalog TOML file (built-in catalog when empty)",
			Sources:     cli.EnvVars("BUSSOLA_CONFIG"),
			Destination: &c.path,
		},
	}
}

// Path returns the configured catalog path
func (c *Catalog) Path() string {
	return c.path
}

// LogValue implements slog.LogValuer
func (c *Catalog) LogValue() slog.Value {
	if c.path == "" {
		return slog.StringValue("built-in")
	}
	return slog.StringValue(c.path)
}

// Configure loads the catalog from the configured path
func (c *Catalog) Configure() (*model.Catalog, error) {
	if c.path == "" {
		return model.DefaultCatalog(), nil
	}
	return LoadCatalog(c.path)
}

type catalogFile struct {
	WeekStart       string          `toml:"week_start"`
	DefaultDuration *int            `toml:"default_duration"`
	Categories      []categoryEntry `toml:"category"`
	States          []rankedEntry   `toml:"state"`
	Priorities      []rankedEntry   `toml:"priority"`
}

type categoryEntry struct {
	ID       string `toml:"id"`
	Title    string `toml:"title"`
	Color    string `toml:"color"`
	Shortcut string `toml:"shortcut"`
	Duration int    `toml:"duration"`
	DualDate bool   `toml:"dual_date"`
}

type rankedEntry struct {
	ID       string `toml:"id"`
	Title    string `toml:"title"`
	Color    string `toml:"color"`
	Shortcut string `toml:"shortcut"`
	Rank     int    `toml:"rank"`
}

// LoadCatalog reads a catalog TOML file. Sections missing from the file keep the built-in entries.
func LoadCatalog(path string) (*model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "catalog file not found", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V(ConfigPathKey, path))
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse catalog file", goerr.V(ConfigPathKey, path), goerr.V("reason", err.Error()))
	}

	catalog, err := file.build()
	if err != nil {
		return nil, goerr.Wrap(err, "invalid catalog file", goerr.V(ConfigPathKey, path))
	}
	if err := catalog.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "catalog validation failed", goerr.V(ConfigPathKey, path), goerr.V("reason", err.Error()))
	}
	return catalog, nil
}

func (f *catalogFile) build() (*model.Catalog, error) {
	catalog := model.DefaultCatalog()

	if f.WeekStart != "" {
		day, err := parseWeekday(f.WeekStart)
		if err != nil {
			return nil, err
		}
		catalog.WeekStart = day
	}
	if f.DefaultDuration != nil {
		catalog.DefaultDuration = *f.DefaultDuration
	}

	if len(f.Categories) > 0 {
		catalog.Categories = make([]model.Category, len(f.Categories))
		for i, e := range f.Categories {
			catalog.Categories[i] = model.Category{
				ID:       types.CategoryID(e.ID),
				Title:    e.Title,
				Color:    e.Color,
				Shortcut: e.Shortcut,
				Duration: e.Duration,
				DualDate: e.DualDate,
			}
		}
	}
	if len(f.States) > 0 {
		catalog.States = make([]model.State, len(f.States))
		for i, e := range f.States {
			catalog.States[i] = model.State{ID: types.StateID(e.ID), Title: e.Title, Color: e.Color, Shortcut: e.Shortcut, Rank: e.Rank}
		}
	}
	if len(f.Priorities) > 0 {
		catalog.Priorities = make([]model.Priority, len(f.Priorities))
		for i, e := range f.Priorities {
			catalog.Priorities[i] = model.Priority{ID: types.PriorityID(e.ID), Title: e.Title, Color: e.Color, Shortcut: e.Shortcut, Rank: e.Rank}
		}
	}

	return catalog, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) {
			return d, nil
		}
	}
	return 0, goerr.Wrap(ErrInvalidConfig, "unknown week start", goerr.V("week_start", s))
}
