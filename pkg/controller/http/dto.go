package http

import (
	"strings"
	"time"

	"github.com/bussola-app/bussola/pkg/agenda"
	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
	"github.com/bussola-app/bussola/pkg/schedule"
	"github.com/bussola-app/bussola/pkg/usecase"
)

// Timestamps on the wire use schedule.Layout in the server location. An empty string is "no date".

type actionResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	State         string   `json:"state"`
	Priority      string   `json:"priority"`
	Date          string   `json:"date"`
	InstagramDate string   `json:"instagram_date"`
	Time          int      `json:"time"`
	Partners      []string `json:"partners"`
	Responsibles  []string `json:"responsibles"`
	Sprints       []string `json:"sprints"`
	Archived      bool     `json:"archived"`
	Delayed       bool     `json:"delayed"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// actionRequest carries a new action or a partial update. Absent fields are left untouched.
type actionRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	State         *string  `json:"state"`
	Priority      *string  `json:"priority"`
	Date          *string  `json:"date"`
	InstagramDate *string  `json:"instagram_date"`
	Time          *int     `json:"time"`
	Partners      []string `json:"partners"`
	Responsibles  []string `json:"responsibles"`
	Archived      *bool    `json:"archived"`
}

type intentRequest struct {
	Intent  string         `json:"intent"`
	ID      string         `json:"id"`
	IDs     []string       `json:"ids"`
	Action  *actionRequest `json:"action"`
	UserID  string         `json:"user_id"`
	Partner string         `json:"partner"`
	Title   string         `json:"title"`
}

type intentResponse struct {
	Intent    string           `json:"intent"`
	Action    *actionResponse  `json:"action,omitempty"`
	Actions   []actionResponse `json:"actions,omitempty"`
	Topic     *topicResponse   `json:"topic,omitempty"`
	UpdatedAt string           `json:"updated_at"`
}

type topicRequest struct {
	Partner string `json:"partner"`
	Title   string `json:"title"`
	UserID  string `json:"user_id"`
}

type topicResponse struct {
	ID        string `json:"id"`
	Partner   string `json:"partner"`
	Title     string `json:"title"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

type shortcutRequest struct {
	Key       string `json:"key"`
	Instagram bool   `json:"instagram"`
}

type moveRequest struct {
	Day       string `json:"day"`
	Instagram bool   `json:"instagram"`
}

type dashboardResponse struct {
	Today         []actionResponse `json:"today"`
	Tomorrow      []actionResponse `json:"tomorrow"`
	ThisWeek      []actionResponse `json:"this_week"`
	Month         []actionResponse `json:"month"`
	Delayed       []actionResponse `json:"delayed"`
	NotFinished   []actionResponse `json:"not_finished"`
	Urgent        []actionResponse `json:"urgent"`
	InstagramFeed []actionResponse `json:"instagram_feed"`
	Sprint        []actionResponse `json:"sprint"`
}

type dayResponse struct {
	Date      string           `json:"date"`
	InMonth   bool             `json:"in_month"`
	IsToday   bool             `json:"is_today"`
	Delayed   int              `json:"delayed"`
	TotalTime int              `json:"total_time"`
	Actions   []actionResponse `json:"actions"`
}

type columnResponse struct {
	State   string           `json:"state"`
	Title   string           `json:"title"`
	Color   string           `json:"color"`
	Actions []actionResponse `json:"actions"`
}

type catalogEntry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Color    string `json:"color"`
	Shortcut string `json:"shortcut"`
	Duration int    `json:"duration,omitempty"`
	DualDate bool   `json:"dual_date,omitempty"`
	Rank     int    `json:"rank,omitempty"`
}

type catalogResponse struct {
	Categories      []catalogEntry `json:"categories"`
	States          []catalogEntry `json:"states"`
	Priorities      []catalogEntry `json:"priorities"`
	WeekStart       string         `json:"week_start"`
	DefaultDuration int            `json:"default_duration"`
}

type shortcutResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

func (s *Server) formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return schedule.Format(t.In(s.loc))
}

func (s *Server) parseTime(v string) (time.Time, error) {
	return schedule.ParseIn(v, s.loc)
}

func (s *Server) toActionResponse(a *model.Action) actionResponse {
	return actionResponse{
		ID:            a.ID.String(),
		Title:         a.Title,
		Description:   a.Description,
		Category:      string(a.Category),
		State:         string(a.State),
		Priority:      string(a.Priority),
		Date:          s.formatTime(a.Date),
		InstagramDate: s.formatTime(a.InstagramDate),
		Time:          a.Time,
		Partners:      nonNil(a.Partners),
		Responsibles:  nonNil(a.Responsibles),
		Sprints:       nonNil(a.Sprints),
		Archived:      a.Archived,
		Delayed:       schedule.IsActionDelayed(a, schedule.StateOf(s.uc.Catalog(), a), s.uc.Now()),
		CreatedAt:     s.formatTime(a.CreatedAt),
		UpdatedAt:     s.formatTime(a.UpdatedAt),
	}
}

func (s *Server) toActionResponses(actions []*model.Action) []actionResponse {
	out := make([]actionResponse, len(actions))
	for i, a := range actions {
		out[i] = s.toActionResponse(a)
	}
	return out
}

func (s *Server) toTopicResponse(t *model.Topic) topicResponse {
	return topicResponse{
		ID:        t.ID.String(),
		Partner:   t.Partner,
		Title:     t.Title,
		UserID:    t.UserID,
		CreatedAt: s.formatTime(t.CreatedAt),
	}
}

func (s *Server) toIntentResponse(res *usecase.SubmitResult) intentResponse {
	out := intentResponse{
		Intent:    res.Intent.String(),
		UpdatedAt: s.formatTime(res.UpdatedAt),
	}
	if res.Action != nil {
		a := s.toActionResponse(res.Action)
		out.Action = &a
	}
	if res.Actions != nil {
		out.Actions = s.toActionResponses(res.Actions)
	}
	if res.Topic != nil {
		t := s.toTopicResponse(res.Topic)
		out.Topic = &t
	}
	return out
}

func (s *Server) toDashboardResponse(d *usecase.Dashboard) dashboardResponse {
	return dashboardResponse{
		Today:         s.toActionResponses(d.Today),
		Tomorrow:      s.toActionResponses(d.Tomorrow),
		ThisWeek:      s.toActionResponses(d.ThisWeek),
		Month:         s.toActionResponses(d.Month),
		Delayed:       s.toActionResponses(d.Delayed),
		NotFinished:   s.toActionResponses(d.NotFinished),
		Urgent:        s.toActionResponses(d.Urgent),
		InstagramFeed: s.toActionResponses(d.InstagramFeed),
		Sprint:        s.toActionResponses(d.Sprint),
	}
}

func (s *Server) toDayResponses(days []agenda.Day) []dayResponse {
	out := make([]dayResponse, len(days))
	for i, d := range days {
		out[i] = dayResponse{
			Date:      d.Date.Format(schedule.DayLayout),
			InMonth:   d.InMonth,
			IsToday:   d.IsToday,
			Delayed:   d.Delayed,
			TotalTime: d.TotalTime,
			Actions:   s.toActionResponses(d.Actions),
		}
	}
	return out
}

func (s *Server) toColumnResponses(cols []agenda.Column) []columnResponse {
	out := make([]columnResponse, len(cols))
	for i, c := range cols {
		out[i] = columnResponse{
			State:   string(c.State.ID),
			Title:   c.State.Title,
			Color:   c.State.Color,
			Actions: s.toActionResponses(c.Actions),
		}
	}
	return out
}

func toCatalogResponse(c *model.Catalog) catalogResponse {
	out := catalogResponse{
		Categories:      make([]catalogEntry, len(c.Categories)),
		States:          make([]catalogEntry, len(c.States)),
		Priorities:      make([]catalogEntry, len(c.Priorities)),
		WeekStart:       strings.ToLower(c.WeekStart.String()),
		DefaultDuration: c.DefaultDuration,
	}
	for i, cat := range c.Categories {
		out.Categories[i] = catalogEntry{
			ID:       string(cat.ID),
			Title:    cat.Title,
			Color:    cat.Color,
			Shortcut: cat.Shortcut,
			Duration: cat.Duration,
			DualDate: cat.DualDate,
		}
	}
	for i, st := range c.States {
		out.States[i] = catalogEntry{ID: string(st.ID), Title: st.Title, Color: st.Color, Shortcut: st.Shortcut, Rank: st.Rank}
	}
	for i, p := range c.Priorities {
		out.Priorities[i] = catalogEntry{ID: string(p.ID), Title: p.Title, Color: p.Color, Shortcut: p.Shortcut, Rank: p.Rank}
	}
	return out
}

// toDraft reads a create request. Absent fields stay zero and take the catalog defaults.
func (s *Server) toDraft(req *actionRequest) (model.ActionDraft, error) {
	var d model.ActionDraft
	if req == nil {
		return d, nil
	}
	d.Title = deref(req.Title)
	d.Description = deref(req.Description)
	d.Category = types.CategoryID(deref(req.Category))
	d.State = types.StateID(deref(req.State))
	d.Priority = types.PriorityID(deref(req.Priority))
	if req.Time != nil {
		d.Time = *req.Time
	}
	d.Partners = req.Partners
	d.Responsibles = req.Responsibles

	var err error
	if d.Date, err = s.parseTime(deref(req.Date)); err != nil {
		return d, err
	}
	if d.InstagramDate, err = s.parseTime(deref(req.InstagramDate)); err != nil {
		return d, err
	}
	return d, nil
}

// toPatch reads a partial update. An empty date string clears the date.
func (s *Server) toPatch(req *actionRequest) (model.ActionPatch, error) {
	var p model.ActionPatch
	if req == nil {
		return p, nil
	}
	p.Title = req.Title
	p.Description = req.Description
	if req.Category != nil {
		c := types.CategoryID(*req.Category)
		p.Category = &c
	}
	if req.State != nil {
		st := types.StateID(*req.State)
		p.State = &st
	}
	if req.Priority != nil {
		pr := types.PriorityID(*req.Priority)
		p.Priority = &pr
	}
	if req.Date != nil {
		t, err := s.parseTime(*req.Date)
		if err != nil {
			return p, err
		}
		p.Date = &t
	}
	if req.InstagramDate != nil {
		t, err := s.parseTime(*req.InstagramDate)
		if err != nil {
			return p, err
		}
		p.InstagramDate = &t
	}
	p.Time = req.Time
	p.Partners = req.Partners
	p.Responsibles = req.Responsibles
	p.Archived = req.Archived
	return p, nil
}

func toActionIDs(ids []string) []types.ActionID {
	out := make([]types.ActionID, len(ids))
	for i, id := range ids {
		out[i] = types.ActionID(id)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
