package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/utils/safe"
)

func (s *Server) postCaption(w http.ResponseWriter, r *http.Request) {
	caption, err := s.uc.Caption.Generate(r.Context(), actionID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"text":     caption.Text,
		"hashtags": nonNil(caption.Hashtags),
		"caption":  caption.Render(),
	})
}

func (s *Server) createTopic(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	topic, err := s.uc.Action.CreateTopic(r.Context(), req.Partner, req.Title, req.UserID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, s.toTopicResponse(topic))
}

func (s *Server) listTopics(w http.ResponseWriter, r *http.Request) {
	partner := r.URL.Query().Get("partner")
	if partner == "" {
		handleError(w, r, goerr.Wrap(ErrBadRequest, "partner is required"))
		return
	}
	topics, err := s.uc.Action.ListTopics(r.Context(), partner)
	if err != nil {
		handleError(w, r, err)
		return
	}
	out := make([]topicResponse, len(topics))
	for i, t := range topics {
		out[i] = s.toTopicResponse(t)
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)
	if err := r.ParseMultipartForm(s.maxUploadSize); err != nil {
		handleError(w, r, goerr.Wrap(ErrBadRequest, "invalid multipart form", goerr.V("error", err.Error())))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, r, goerr.Wrap(ErrBadRequest, "file field is required"))
		return
	}
	defer safe.Close(r.Context(), file)

	url, err := s.uc.Upload.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, map[string]string{"url": url})
}
