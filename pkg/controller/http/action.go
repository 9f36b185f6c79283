package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
	"github.com/bussola-app/bussola/pkg/schedule"
	"github.com/bussola-app/bussola/pkg/usecase"
)

func actionID(r *http.Request) types.ActionID {
	return types.ActionID(chi.URLParam(r, "id"))
}

func (s *Server) createAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	draft, err := s.toDraft(&req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	a, err := s.uc.Action.Create(r.Context(), draft)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, s.toActionResponse(a))
}

func (s *Server) postIntent(w http.ResponseWriter, r *http.Request) {
	var req intentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	sub := usecase.Submission{
		Intent:  types.Intent(req.Intent),
		ID:      types.ActionID(req.ID),
		IDs:     toActionIDs(req.IDs),
		UserID:  req.UserID,
		Partner: req.Partner,
		Title:   req.Title,
	}

	var err error
	if sub.Intent == types.IntentCreateAction {
		sub.Draft, err = s.toDraft(req.Action)
	} else {
		sub.Patch, err = s.toPatch(req.Action)
	}
	if err != nil {
		handleError(w, r, err)
		return
	}

	res, err := s.uc.Action.Submit(r.Context(), sub)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s.toIntentResponse(res))
}

func (s *Server) getAction(w http.ResponseWriter, r *http.Request) {
	a, err := s.uc.Action.Get(r.Context(), actionID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s.toActionResponse(a))
}

func (s *Server) patchAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	patch, err := s.toPatch(&req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	s.respondAction(w, r)(s.uc.Action.Update(r.Context(), actionID(r), patch))
}

func (s *Server) archiveAction(w http.ResponseWriter, r *http.Request) {
	s.respondAction(w, r)(s.uc.Action.Archive(r.Context(), actionID(r)))
}

func (s *Server) recoverAction(w http.ResponseWriter, r *http.Request) {
	s.respondAction(w, r)(s.uc.Action.Recover(r.Context(), actionID(r)))
}

func (s *Server) destroyAction(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Action.Destroy(r.Context(), actionID(r)); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) duplicateAction(w http.ResponseWriter, r *http.Request) {
	a, err := s.uc.Action.Duplicate(r.Context(), actionID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, s.toActionResponse(a))
}

func (s *Server) applyShortcut(w http.ResponseWriter, r *http.Request) {
	var req shortcutRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	s.respondAction(w, r)(s.uc.Action.ApplyShortcut(r.Context(), actionID(r), req.Key, req.Instagram))
}

func (s *Server) moveAction(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	day, err := time.ParseInLocation(schedule.DayLayout, req.Day, s.loc)
	if err != nil {
		handleError(w, r, goerr.Wrap(ErrBadRequest, "day must be yyyy-MM-dd", goerr.V("day", req.Day)))
		return
	}
	s.respondAction(w, r)(s.uc.Action.MoveToDay(r.Context(), actionID(r), day, req.Instagram))
}

func (s *Server) setSprint(w http.ResponseWriter, r *http.Request) {
	s.respondAction(w, r)(s.uc.Action.SetSprint(r.Context(), actionID(r), r.URL.Query().Get("user")))
}

func (s *Server) unsetSprint(w http.ResponseWriter, r *http.Request) {
	s.respondAction(w, r)(s.uc.Action.UnsetSprint(r.Context(), actionID(r), r.URL.Query().Get("user")))
}

func (s *Server) removePartner(w http.ResponseWriter, r *http.Request) {
	s.respondAction(w, r)(s.uc.Action.RemovePartner(r.Context(), actionID(r), chi.URLParam(r, "partner")))
}

func (s *Server) removeResponsible(w http.ResponseWriter, r *http.Request) {
	s.respondAction(w, r)(s.uc.Action.RemoveResponsible(r.Context(), actionID(r), chi.URLParam(r, "user")))
}

// respondAction writes the action returned by a mutation, or its error
func (s *Server) respondAction(w http.ResponseWriter, r *http.Request) func(*model.Action, error) {
	return func(a *model.Action, err error) {
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, s.toActionResponse(a))
	}
}
