package http

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/datefmt"
	"github.com/bussola-app/bussola/pkg/domain/interfaces"
	"github.com/bussola-app/bussola/pkg/domain/types"
	"github.com/bussola-app/bussola/pkg/schedule"
	"github.com/bussola-app/bussola/pkg/usecase"
)

const monthLayout = "2006-01"

func (s *Server) listActions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	archived, err := queryBool(q, "archived")
	if err != nil {
		handleError(w, r, err)
		return
	}
	instagram, err := queryBool(q, "instagram")
	if err != nil {
		handleError(w, r, err)
		return
	}
	order, err := types.ParseOrderBy(q.Get("order"))
	if err != nil {
		handleError(w, r, goerr.Wrap(ErrBadRequest, err.Error()))
		return
	}
	dir, err := types.ParseDirection(q.Get("direction"))
	if err != nil {
		handleError(w, r, goerr.Wrap(ErrBadRequest, err.Error()))
		return
	}

	actions, err := s.uc.View.List(r.Context(), usecase.ListInput{
		ListActionOptions: interfaces.ListActionOptions{
			Archived:    archived,
			Partner:     q.Get("partner"),
			Responsible: q.Get("responsible"),
		},
		OrderBy:          order,
		Direction:        dir,
		UseInstagramDate: instagram,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s.toActionResponses(actions))
}

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.uc.View.Dashboard(r.Context(), r.URL.Query().Get("responsible"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s.toDashboardResponse(d))
}

func (s *Server) getCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	ref := s.uc.Now().In(s.loc)
	if m := q.Get("month"); m != "" {
		var err error
		if ref, err = time.ParseInLocation(monthLayout, m, s.loc); err != nil {
			handleError(w, r, goerr.Wrap(ErrBadRequest, "month must be yyyy-MM", goerr.V("month", m)))
			return
		}
	}
	instagram, err := queryBool(q, "instagram")
	if err != nil {
		handleError(w, r, err)
		return
	}

	days, err := s.uc.View.Calendar(r.Context(), ref, q.Get("partner"), instagram)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s.toDayResponses(days))
}

func (s *Server) getKanban(w http.ResponseWriter, r *http.Request) {
	cols, err := s.uc.View.Kanban(r.Context(), r.URL.Query().Get("partner"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s.toColumnResponses(cols))
}

func (s *Server) getDatetime(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var opts []datefmt.Option
	if v := q.Get("date_format"); v != "" {
		f, err := datefmt.ParseDateFormat(v)
		if err != nil {
			handleError(w, r, err)
			return
		}
		opts = append(opts, datefmt.WithDateFormat(f))
	}
	if v := q.Get("time_format"); v != "" {
		f, err := datefmt.ParseTimeFormat(v)
		if err != nil {
			handleError(w, r, err)
			return
		}
		opts = append(opts, datefmt.WithTimeFormat(f))
	}
	opts = append(opts, datefmt.WithPrefix(q.Get("prefix")), datefmt.WithSuffix(q.Get("suffix")))

	instagram, err := queryBool(q, "instagram")
	if err != nil {
		handleError(w, r, err)
		return
	}

	text, err := s.uc.View.FormatDatetime(r.Context(), actionID(r), instagram, opts...)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"text": text})
}

func (s *Server) getCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, toCatalogResponse(s.uc.Catalog()))
}

func (s *Server) getShortcuts(w http.ResponseWriter, r *http.Request) {
	shortcuts := schedule.DateShortcuts()
	out := make([]shortcutResponse, len(shortcuts))
	for i, sc := range shortcuts {
		out[i] = shortcutResponse{Key: sc.Key, Label: sc.Label}
	}
	writeJSON(w, r, http.StatusOK, out)
}

// queryBool reads an optional boolean query parameter. Absent means false.
func queryBool(q url.Values, key string) (bool, error) {
	v := q.Get(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, goerr.Wrap(ErrBadRequest, "invalid boolean parameter", goerr.V(key, v))
	}
	return b, nil
}
