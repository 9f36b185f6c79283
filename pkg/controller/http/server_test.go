package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/bussola-app/bussola/pkg/controller/http"
	"github.com/bussola-app/bussola/pkg/repository/memory"
	"github.com/bussola-app/bussola/pkg/usecase"
)

var now = time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)

type action struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	State         string   `json:"state"`
	Date          string   `json:"date"`
	InstagramDate string   `json:"instagram_date"`
	Time          int      `json:"time"`
	Partners      []string `json:"partners"`
	Sprints       []string `json:"sprints"`
	Archived      bool     `json:"archived"`
	Delayed       bool     `json:"delayed"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

type uploader struct{ name string }

func (u *uploader) Upload(_ context.Context, name, _ string, r io.Reader) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	u.name = name
	return "https://cdn.example.com/" + name, nil
}

func setupServer(t *testing.T, opts ...usecase.Option) http.Handler {
	t.Helper()
	opts = append([]usecase.Option{usecase.WithClock(func() time.Time { return now })}, opts...)
	uc := usecase.New(memory.New(), opts...)
	return httpctrl.New(uc, httpctrl.WithLocation(time.UTC))
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		gt.NoError(t, err).Required()
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &v)).Required()
	return v
}

func createAction(t *testing.T, h http.Handler, body map[string]any) action {
	t.Helper()
	w := do(t, h, http.MethodPost, "/api/actions", body)
	gt.Number(t, w.Code).Equal(http.StatusCreated)
	return decode[action](t, w)
}

func reels() map[string]any {
	return map[string]any{
		"title":        "Reels da semana",
		"category":     "reels",
		"date":         "2024-03-14 10:00:00",
		"partners":     []string{"padaria"},
		"responsibles": []string{"U1"},
	}
}

func TestServer_CreateAction(t *testing.T) {
	h := setupServer(t)

	a := createAction(t, h, reels())
	gt.String(t, a.ID).NotEqual("")
	gt.Value(t, a.Date).Equal("2024-03-14 10:00:00")
	gt.Value(t, a.InstagramDate).Equal("2024-03-14 11:00:00")
	gt.Number(t, a.Time).Equal(60)
	gt.Value(t, a.State).Equal("idea")
	gt.Value(t, a.CreatedAt).Equal("2024-03-13 12:00:00")
	gt.Bool(t, a.Delayed).False()

	w := do(t, h, http.MethodGet, "/api/actions/"+a.ID, nil)
	gt.Number(t, w.Code).Equal(http.StatusOK)
	gt.Value(t, decode[action](t, w).Title).Equal("Reels da semana")
}

func TestServer_CreateAction_Errors(t *testing.T) {
	h := setupServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"title": "", "partners": []string{"p"}, "responsibles": []string{"u"}}},
		{"missing partner", map[string]any{"title": "x", "responsibles": []string{"u"}}},
		{"malformed date", map[string]any{"title": "x", "date": "14/03/2024", "partners": []string{"p"}, "responsibles": []string{"u"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/api/actions", tt.body)
			gt.Number(t, w.Code).Equal(http.StatusBadRequest)
		})
	}

	req := httptest.NewRequest(http.MethodPost, "/api/actions", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	gt.Number(t, w.Code).Equal(http.StatusBadRequest)
}

func TestServer_PatchAction(t *testing.T) {
	h := setupServer(t)
	a := createAction(t, h, reels())

	w := do(t, h, http.MethodPatch, "/api/actions/"+a.ID, map[string]any{"date": "2024-03-14 11:30:00"})
	gt.Number(t, w.Code).Equal(http.StatusOK)
	got := decode[action](t, w)
	gt.Value(t, got.Date).Equal("2024-03-14 11:30:00")
	gt.Value(t, got.InstagramDate).Equal("2024-03-14 12:30:00")

	w = do(t, h, http.MethodPatch, "/api/actions/"+a.ID, map[string]any{"partners": []string{}})
	gt.Number(t, w.Code).Equal(http.StatusBadRequest)

	w = do(t, h, http.MethodPatch, "/api/actions/unknown", map[string]any{"title": "x"})
	gt.Number(t, w.Code).Equal(http.StatusNotFound)
}

func TestServer_Intents(t *testing.T) {
	h := setupServer(t)

	type result struct {
		Intent    string  `json:"intent"`
		Action    *action `json:"action"`
		UpdatedAt string  `json:"updated_at"`
	}

	w := do(t, h, http.MethodPost, "/api/intents", map[string]any{
		"intent": "createAction",
		"action": reels(),
	})
	gt.Number(t, w.Code).Equal(http.StatusOK)
	created := decode[result](t, w)
	gt.Value(t, created.Intent).Equal("createAction")
	gt.Value(t, created.UpdatedAt).Equal("2024-03-13 12:00:00")
	gt.Value(t, created.Action).NotNil()

	w = do(t, h, http.MethodPost, "/api/intents", map[string]any{
		"intent": "updateAction",
		"id":     created.Action.ID,
		"action": map[string]any{"state": "doing"},
	})
	gt.Number(t, w.Code).Equal(http.StatusOK)
	gt.Value(t, decode[result](t, w).Action.State).Equal("doing")

	w = do(t, h, http.MethodPost, "/api/intents", map[string]any{
		"intent":  "setSprint",
		"id":      created.Action.ID,
		"user_id": "U1",
	})
	gt.Number(t, w.Code).Equal(http.StatusOK)
	gt.Value(t, decode[result](t, w).Action.Sprints).Equal([]string{"U1"})

	w = do(t, h, http.MethodPost, "/api/intents", map[string]any{"intent": "publishAction"})
	gt.Number(t, w.Code).Equal(http.StatusBadRequest)
}

func TestServer_Lifecycle(t *testing.T) {
	h := setupServer(t)
	a := createAction(t, h, reels())
	path := "/api/actions/" + a.ID

	w := do(t, h, http.MethodDelete, path, nil)
	gt.Number(t, w.Code).Equal(http.StatusOK)
	gt.Bool(t, decode[action](t, w).Archived).True()

	w = do(t, h, http.MethodGet, "/api/actions?archived=true", nil)
	gt.Array(t, decode[[]action](t, w)).Length(1)

	w = do(t, h, http.MethodPost, path+"/recover", nil)
	gt.Bool(t, decode[action](t, w).Archived).False()

	w = do(t, h, http.MethodPost, path+"/duplicate", nil)
	gt.Number(t, w.Code).Equal(http.StatusCreated)
	gt.Value(t, decode[action](t, w).ID).NotEqual(a.ID)

	w = do(t, h, http.MethodDelete, path+"/permanent", nil)
	gt.Number(t, w.Code).Equal(http.StatusNoContent)

	w = do(t, h, http.MethodGet, path, nil)
	gt.Number(t, w.Code).Equal(http.StatusNotFound)
}

func TestServer_ListActions(t *testing.T) {
	h := setupServer(t)
	for _, title := range []string{"Óculos", "banana", "Abacaxi"} {
		body := reels()
		body["title"] = title
		createAction(t, h, body)
	}

	w := do(t, h, http.MethodGet, "/api/actions?partner=padaria&order=title", nil)
	gt.Number(t, w.Code).Equal(http.StatusOK)
	var titles []string
	for _, a := range decode[[]action](t, w) {
		titles = append(titles, a.Title)
	}
	gt.Value(t, titles).Equal([]string{"Abacaxi", "banana", "Óculos"})

	w = do(t, h, http.MethodGet, "/api/actions?partner=academia", nil)
	gt.Array(t, decode[[]action](t, w)).Length(0)

	for _, q := range []string{"order=size", "direction=up", "archived=maybe"} {
		w = do(t, h, http.MethodGet, "/api/actions?"+q, nil)
		gt.Number(t, w.Code).Equal(http.StatusBadRequest)
	}
}

func TestServer_ShortcutAndMove(t *testing.T) {
	h := setupServer(t)
	a := createAction(t, h, reels())
	path := "/api/actions/" + a.ID

	w := do(t, h, http.MethodPost, path+"/shortcut", map[string]any{"key": "h", "instagram": true})
	gt.Number(t, w.Code).Equal(http.StatusOK)
	got := decode[action](t, w)
	gt.Value(t, got.InstagramDate).Equal("2024-03-14 12:00:00")
	gt.Value(t, got.Date).Equal("2024-03-14 10:00:00")

	w = do(t, h, http.MethodPost, path+"/shortcut", map[string]any{"key": "z"})
	gt.Number(t, w.Code).Equal(http.StatusBadRequest)

	w = do(t, h, http.MethodPost, path+"/move", map[string]any{"day": "2024-03-20"})
	gt.Number(t, w.Code).Equal(http.StatusOK)
	got = decode[action](t, w)
	gt.Value(t, got.Date).Equal("2024-03-20 10:00:00")
	gt.Value(t, got.InstagramDate).Equal("2024-03-20 11:00:00")

	w = do(t, h, http.MethodPost, path+"/move", map[string]any{"day": "20/03"})
	gt.Number(t, w.Code).Equal(http.StatusBadRequest)
}

func TestServer_SprintAndMembers(t *testing.T) {
	h := setupServer(t)
	body := reels()
	body["partners"] = []string{"padaria", "academia"}
	a := createAction(t, h, body)
	path := "/api/actions/" + a.ID

	w := do(t, h, http.MethodPut, path+"/sprint?user=U1", nil)
	gt.Value(t, decode[action](t, w).Sprints).Equal([]string{"U1"})

	w = do(t, h, http.MethodDelete, path+"/sprint?user=U1", nil)
	gt.Array(t, decode[action](t, w).Sprints).Length(0)

	w = do(t, h, http.MethodPut, path+"/sprint", nil)
	gt.Number(t, w.Code).Equal(http.StatusBadRequest)

	w = do(t, h, http.MethodDelete, path+"/partners/padaria", nil)
	gt.Value(t, decode[action](t, w).Partners).Equal([]string{"academia"})

	w = do(t, h, http.MethodDelete, path+"/partners/academia", nil)
	gt.Number(t, w.Code).Equal(http.StatusBadRequest)

	w = do(t, h, http.MethodDelete, path+"/responsibles/U1", nil)
	gt.Number(t, w.Code).Equal(http.StatusBadRequest)
}

func TestServer_Views(t *testing.T) {
	h := setupServer(t)
	createAction(t, h, reels())

	w := do(t, h, http.MethodGet, "/api/actions/calendar?month=2024-03&partner=padaria", nil)
	gt.Number(t, w.Code).Equal(http.StatusOK)
	days := decode[[]struct {
		Date    string   `json:"date"`
		IsToday bool     `json:"is_today"`
		Actions []action `json:"actions"`
	}](t, w)
	gt.Number(t, len(days)%7).Equal(0)
	for _, d := range days {
		if d.Date == "2024-03-14" {
			gt.Array(t, d.Actions).Length(1)
		}
		if d.Date == "2024-03-13" {
			gt.Bool(t, d.IsToday).True()
		}
	}

	w = do(t, h, http.MethodGet, "/api/actions/calendar?month=march", nil)
	gt.Number(t, w.Code).Equal(http.StatusBadRequest)

	w = do(t, h, http.MethodGet, "/api/actions/kanban", nil)
	gt.Number(t, w.Code).Equal(http.StatusOK)
	cols := decode[[]struct {
		State   string   `json:"state"`
		Actions []action `json:"actions"`
	}](t, w)
	gt.Array(t, cols).Length(8).Required()
	gt.Value(t, cols[0].State).Equal("idea")
	gt.Array(t, cols[0].Actions).Length(1)

	w = do(t, h, http.MethodGet, "/api/actions/dashboard?responsible=U1", nil)
	gt.Number(t, w.Code).Equal(http.StatusOK)
	dash := decode[map[string][]action](t, w)
	gt.Array(t, dash["tomorrow"]).Length(1)
	gt.Array(t, dash["today"]).Length(0)
	gt.Array(t, dash["instagram_feed"]).Length(1)
}

func TestServer_Datetime(t *testing.T) {
	h := setupServer(t)
	a := createAction(t, h, reels())
	path := "/api/actions/" + a.ID + "/datetime"

	tests := []struct {
		query string
		want  string
	}{
		{"", "quinta-feira, 14 de março às 10h"},
		{"?date_format=short&time_format=hour", "14/3 às 10h"},
		{"?date_format=medium&instagram=true&prefix=Publica%20em%20", "Publica em 14 de mar"},
		{"?date_format=none&time_format=hour&instagram=true", "11h"},
		{"?date_format=4&time_format=1", "quinta-feira, 14 de março às 10h"},
		{"?date_format=2&time_format=0", "14/3"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			w := do(t, h, http.MethodGet, path+tt.query, nil)
			gt.Number(t, w.Code).Equal(http.StatusOK)
			gt.Value(t, decode[map[string]string](t, w)["text"]).Equal(tt.want)
		})
	}

	w := do(t, h, http.MethodGet, path+"?date_format=full", nil)
	gt.Number(t, w.Code).Equal(http.StatusBadRequest)

	w = do(t, h, http.MethodGet, path+"?date_format=9", nil)
	gt.Number(t, w.Code).Equal(http.StatusBadRequest)
}

func TestServer_Caption_NotConfigured(t *testing.T) {
	h := setupServer(t)
	a := createAction(t, h, reels())

	w := do(t, h, http.MethodPost, "/api/actions/"+a.ID+"/caption", nil)
	gt.Number(t, w.Code).Equal(http.StatusNotImplemented)
}

func TestServer_Topics(t *testing.T) {
	h := setupServer(t)

	w := do(t, h, http.MethodPost, "/api/topics", map[string]any{"partner": "padaria", "title": "Cardápio", "user_id": "U1"})
	gt.Number(t, w.Code).Equal(http.StatusCreated)

	w = do(t, h, http.MethodGet, "/api/topics?partner=padaria", nil)
	gt.Number(t, w.Code).Equal(http.StatusOK)
	topics := decode[[]map[string]string](t, w)
	gt.Array(t, topics).Length(1).Required()
	gt.Value(t, topics[0]["title"]).Equal("Cardápio")
	gt.Value(t, topics[0]["created_at"]).Equal("2024-03-13 12:00:00")

	w = do(t, h, http.MethodPost, "/api/topics", map[string]any{"partner": "padaria"})
	gt.Number(t, w.Code).Equal(http.StatusBadRequest)

	w = do(t, h, http.MethodGet, "/api/topics", nil)
	gt.Number(t, w.Code).Equal(http.StatusBadRequest)
}

func TestServer_Upload(t *testing.T) {
	up := &uploader{}
	h := setupServer(t, usecase.WithFileStorage(up))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "logo.png")
	gt.NoError(t, err).Required()
	_, err = part.Write([]byte("png"))
	gt.NoError(t, err).Required()
	gt.NoError(t, mw.Close()).Required()

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	gt.Number(t, w.Code).Equal(http.StatusCreated)
	gt.Value(t, decode[map[string]string](t, w)["url"]).Equal("https://cdn.example.com/logo.png")
	gt.Value(t, up.name).Equal("logo.png")

	w = do(t, h, http.MethodPost, "/api/uploads", map[string]any{})
	gt.Number(t, w.Code).Equal(http.StatusBadRequest)
}

func TestServer_Catalog(t *testing.T) {
	h := setupServer(t)

	w := do(t, h, http.MethodGet, "/api/catalog", nil)
	gt.Number(t, w.Code).Equal(http.StatusOK)
	c := decode[struct {
		Categories []map[string]any `json:"categories"`
		States     []map[string]any `json:"states"`
		WeekStart  string           `json:"week_start"`
	}](t, w)
	gt.Array(t, c.Categories).Length(12)
	gt.Array(t, c.States).Length(8)
	gt.Value(t, c.WeekStart).Equal("sunday")

	w = do(t, h, http.MethodGet, "/api/shortcuts", nil)
	gt.Number(t, w.Code).Equal(http.StatusOK)
	gt.Array(t, decode[[]map[string]string](t, w)).Length(6)

	w = do(t, h, http.MethodGet, "/health", nil)
	gt.Number(t, w.Code).Equal(http.StatusOK)
}
