package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"yard-console/internal/http/flash"
	"yard-console/internal/http/view"
	"yard-console/internal/logx"
)

const bodyLimit = 1 << 20

var errInvalidID = errors.New("invalid id")

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func (h *Handlers) log(r *http.Request) logx.Logger {
	return h.Logger.With(logx.String("req_id", reqID(r.Context())))
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil && logger != nil {
		logger.Error("json encode error", logx.String("req_id", reqID(r.Context())), logx.Err(err))
	}
}

// page pops the pending flash message and builds the common page fields.
func (h *Handlers) page(w http.ResponseWriter, r *http.Request, title string) view.Page {
	p := view.Page{Title: title}
	if h.flashes == nil {
		return p
	}
	m, ok, err := h.flashes.Pop(w, r)
	if err != nil {
		h.log(r).Debug("flash read failed", logx.Err(err))
		return p
	}
	if ok {
		p.Flash = &m
	}
	return p
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.views.Render(&buf, name, data); err != nil {
		h.log(r).Error("render failed", logx.String("view", name), logx.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.log(r).Debug("response write failed", logx.Err(err))
	}
}

// redirect attaches m as the one-shot flash and sends the client to path.
func (h *Handlers) redirect(w http.ResponseWriter, r *http.Request, path string, m flash.Message) {
	if h.flashes != nil {
		if err := h.flashes.Put(w, r, m); err != nil {
			h.log(r).Error("flash write failed", logx.String("path", path), logx.Err(err))
		}
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// serviceFailed records a collaborator failure caught at a handler boundary.
func (h *Handlers) serviceFailed(r *http.Request, entity, op string, id int64, err error) {
	if h.failures != nil {
		h.failures.WithLabelValues(entity, op).Inc()
	}
	fields := []logx.Field{logx.String("entity", entity), logx.String("op", op), logx.Err(err)}
	if id > 0 {
		fields = append(fields, logx.Int64("id", id))
	}
	h.log(r).Warn("service call failed", fields...)
}

func idFromURL(r *http.Request, name string) (int64, error) {
	idStr := chi.URLParam(r, name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	if err := r.ParseForm(); err != nil {
		return errors.New("malformed form")
	}
	return nil
}

func formInt(r *http.Request, field, label string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue(field)))
	if err != nil {
		return 0, errors.New(label + " must be an integer")
	}
	return v, nil
}

func formInt64(r *http.Request, field, label string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue(field)), 10, 64)
	if err != nil {
		return 0, errors.New(label + " must be selected")
	}
	return v, nil
}

func pathWithID(prefix string, id int64) string {
	return prefix + strconv.FormatInt(id, 10)
}
