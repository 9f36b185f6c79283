package model

import (
	"math"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/domain/types"
)

// DefaultDuration is the effort in minutes assumed for categories missing from the catalog
const DefaultDuration = 30

// Category is the reference entry of an action category
type Category struct {
	ID       types.CategoryID
	Title    string
	Color    string
	Shortcut string
	// Duration is the required effort in minutes
	Duration int
	// DualDate marks Instagram feed categories whose work date must precede the publish date
	DualDate bool
}

// State is the reference entry of a workflow state
type State struct {
	ID       types.StateID
	Title    string
	Color    string
	Shortcut string
	Rank     int
}

// Priority is the reference entry of a priority level
type Priority struct {
	ID       types.PriorityID
	Title    string
	Color    string
	Shortcut string
	Rank     int
}

// Catalog holds the read-only reference collections loaded once per session.
// Nothing in the application mutates a Catalog after it is built.
type Catalog struct {
	Categories []Category
	States     []State
	Priorities []Priority

	// WeekStart is the first day of the week for calendars and the this-week filter
	WeekStart time.Weekday
	// DefaultDuration replaces the required duration of unknown categories
	DefaultDuration int
}

// Category looks up a category by slug
func (c *Catalog) Category(id types.CategoryID) (Category, bool) {
	if c == nil {
		return Category{}, false
	}
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// CategoryOrDefault returns the category entry, or a synthetic entry carrying the default duration.
// Unknown categories never block scheduling.
func (c *Catalog) CategoryOrDefault(id types.CategoryID) Category {
	if cat, ok := c.Category(id); ok {
		if cat.Duration <= 0 {
			cat.Duration = c.defaultDuration()
		}
		return cat
	}
	return Category{ID: id, Title: id.String(), Duration: c.defaultDuration()}
}

// DurationFor returns the required duration in minutes of the category
func (c *Catalog) DurationFor(id types.CategoryID) int {
	return c.CategoryOrDefault(id).Duration
}

// UsesDualDate reports whether the category keeps both a work date and a publish date
func (c *Catalog) UsesDualDate(id types.CategoryID) bool {
	cat, ok := c.Category(id)
	return ok && cat.DualDate && id.IsInstagramFeed()
}

// State looks up a state by slug
func (c *Catalog) State(id types.StateID) (State, bool) {
	if c == nil {
		return State{}, false
	}
	for _, s := range c.States {
		if s.ID == id {
			return s, true
		}
	}
	return State{}, false
}

// StateRank returns the configured rank of the state. Unknown states rank last.
func (c *Catalog) StateRank(id types.StateID) int {
	if s, ok := c.State(id); ok {
		return s.Rank
	}
	return math.MaxInt
}

// DefaultState returns the lowest ranked state, used for new actions
func (c *Catalog) DefaultState() types.StateID {
	if c == nil || len(c.States) == 0 {
		return types.StateIdea
	}
	first := c.States[0]
	for _, s := range c.States[1:] {
		if s.Rank < first.Rank {
			first = s
		}
	}
	return first.ID
}

// Priority looks up a priority by slug
func (c *Catalog) Priority(id types.PriorityID) (Priority, bool) {
	if c == nil {
		return Priority{}, false
	}
	for _, p := range c.Priorities {
		if p.ID == id {
			return p, true
		}
	}
	return Priority{}, false
}

// PriorityRank returns the configured rank of the priority. Unknown priorities rank last.
func (c *Catalog) PriorityRank(id types.PriorityID) int {
	if p, ok := c.Priority(id); ok {
		return p.Rank
	}
	return math.MaxInt
}

// CategoryByShortcut finds the category bound to a keyboard shortcut
func (c *Catalog) CategoryByShortcut(key string) (Category, bool) {
	if c == nil || key == "" {
		return Category{}, false
	}
	for _, cat := range c.Categories {
		if cat.Shortcut == key {
			return cat, true
		}
	}
	return Category{}, false
}

// StateByShortcut finds the state bound to a keyboard shortcut
func (c *Catalog) StateByShortcut(key string) (State, bool) {
	if c == nil || key == "" {
		return State{}, false
	}
	for _, s := range c.States {
		if s.Shortcut == key {
			return s, true
		}
	}
	return State{}, false
}

// PriorityByShortcut finds the priority bound to a keyboard shortcut
func (c *Catalog) PriorityByShortcut(key string) (Priority, bool) {
	if c == nil || key == "" {
		return Priority{}, false
	}
	for _, p := range c.Priorities {
		if p.Shortcut == key {
			return p, true
		}
	}
	return Priority{}, false
}

func (c *Catalog) defaultDuration() int {
	if c == nil || c.DefaultDuration <= 0 {
		return DefaultDuration
	}
	return c.DefaultDuration
}

// Validate checks slugs, duplicates, durations and the terminal state
func (c *Catalog) Validate() error {
	categoryIDs := make(map[types.CategoryID]bool)
	for _, cat := range c.Categories {
		if err := cat.ID.Validate(); err != nil {
			return goerr.Wrap(ErrInvalidCatalog, "invalid category ID", goerr.V(CategoryIDKey, cat.ID), goerr.V("reason", err.Error()))
		}
		if categoryIDs[cat.ID] {
			return goerr.Wrap(ErrInvalidCatalog, "duplicate category ID", goerr.V(CategoryIDKey, cat.ID))
		}
		if cat.Duration < 0 {
			return goerr.Wrap(ErrInvalidCatalog, "category duration must not be negative", goerr.V(CategoryIDKey, cat.ID), goerr.V("duration", cat.Duration))
		}
		if cat.DualDate && !cat.ID.IsInstagramFeed() {
			return goerr.Wrap(ErrInvalidCatalog, "only Instagram feed categories can use dual dates", goerr.V(CategoryIDKey, cat.ID))
		}
		categoryIDs[cat.ID] = true
	}

	stateIDs := make(map[types.StateID]bool)
	terminal := 0
	for _, s := range c.States {
		if err := s.ID.Validate(); err != nil {
			return goerr.Wrap(ErrInvalidCatalog, "invalid state ID", goerr.V(StateIDKey, s.ID), goerr.V("reason", err.Error()))
		}
		if stateIDs[s.ID] {
			return goerr.Wrap(ErrInvalidCatalog, "duplicate state ID", goerr.V(StateIDKey, s.ID))
		}
		if s.ID.IsTerminal() {
			terminal++
		}
		stateIDs[s.ID] = true
	}
	if len(c.States) > 0 && terminal != 1 {
		return goerr.Wrap(ErrInvalidCatalog, "catalog must define the finished state", goerr.V(StateIDKey, types.StateFinished))
	}

	priorityIDs := make(map[types.PriorityID]bool)
	for _, p := range c.Priorities {
		if err := p.ID.Validate(); err != nil {
			return goerr.Wrap(ErrInvalidCatalog, "invalid priority ID", goerr.V(PriorityIDKey, p.ID), goerr.V("reason", err.Error()))
		}
		if priorityIDs[p.ID] {
			return goerr.Wrap(ErrInvalidCatalog, "duplicate priority ID", goerr.V(PriorityIDKey, p.ID))
		}
		priorityIDs[p.ID] = true
	}

	if c.WeekStart < time.Sunday || c.WeekStart > time.Saturday {
		return goerr.Wrap(ErrInvalidCatalog, "week start out of range", goerr.V("week_start", int(c.WeekStart)))
	}
	if c.DefaultDuration < 0 {
		return goerr.Wrap(ErrInvalidCatalog, "default duration must not be negative", goerr.V("default_duration", c.DefaultDuration))
	}

	return nil
}

// DefaultCatalog returns the built-in reference collections
func DefaultCatalog() *Catalog {
	return &Catalog{
		Categories: []Category{
			{ID: types.CategoryPost, Title: "Post", Color: "#f43f5e", Shortcut: "p", Duration: 30, DualDate: true},
			{ID: types.CategoryReels, Title: "Reels", Color: "#ec4899", Shortcut: "r", Duration: 60, DualDate: true},
			{ID: types.CategoryCarousel, Title: "Carrossel", Color: "#d946ef", Shortcut: "c", Duration: 60, DualDate: true},
			{ID: types.CategoryStories, Title: "Stories", Color: "#a855f7", Shortcut: "s", Duration: 15, DualDate: true},
			{ID: types.CategoryCapture, Title: "Captação", Color: "#8b5cf6", Shortcut: "k", Duration: 120},
			{ID: types.CategoryTodo, Title: "Tarefa", Color: "#64748b", Shortcut: "t", Duration: 10},
			{ID: types.CategoryMeeting, Title: "Reunião", Color: "#0ea5e9", Shortcut: "m", Duration: 60},
			{ID: types.CategoryAds, Title: "Anúncios", Color: "#14b8a6", Shortcut: "a", Duration: 30},
			{ID: types.CategoryFinance, Title: "Financeiro", Color: "#22c55e", Shortcut: "f", Duration: 30},
			{ID: types.CategoryDesign, Title: "Design", Color: "#eab308", Shortcut: "g", Duration: 60},
			{ID: types.CategoryPrint, Title: "Impresso", Color: "#f97316", Shortcut: "i", Duration: 60},
			{ID: types.CategoryDev, Title: "Desenvolvimento", Color: "#6366f1", Shortcut: "v", Duration: 120},
		},
		States: []State{
			{ID: types.StateIdea, Title: "Ideia", Color: "#facc15", Shortcut: "1", Rank: 1},
			{ID: types.StateDo, Title: "Fazer", Color: "#fb923c", Shortcut: "2", Rank: 2},
			{ID: types.StateDoing, Title: "Fazendo", Color: "#f43f5e", Shortcut: "3", Rank: 3},
			{ID: types.StateReview, Title: "Revisão", Color: "#a855f7", Shortcut: "4", Rank: 4},
			{ID: types.StateDone, Title: "Feito", Color: "#3b82f6", Shortcut: "5", Rank: 5},
			{ID: types.StateApproved, Title: "Aprovado", Color: "#06b6d4", Shortcut: "6", Rank: 6},
			{ID: types.StatePublished, Title: "Publicado", Color: "#10b981", Shortcut: "7", Rank: 7},
			{ID: types.StateFinished, Title: "Finalizado", Color: "#475569", Shortcut: "8", Rank: 8},
		},
		Priorities: []Priority{
			{ID: types.PriorityHigh, Title: "Alta", Color: "#ef4444", Shortcut: "!", Rank: 1},
			{ID: types.PriorityMedium, Title: "Média", Color: "#f59e0b", Shortcut: "@", Rank: 2},
			{ID: types.PriorityLow, Title: "Baixa", Color: "#84cc16", Shortcut: "#", Rank: 3},
		},
		WeekStart:       time.Sunday,
		DefaultDuration: DefaultDuration,
	}
}
