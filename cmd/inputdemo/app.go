package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/inputkit/pkg/clientip"
	"github.com/dmitrymomot/inputkit/pkg/fingerprint"
	"github.com/dmitrymomot/inputkit/pkg/httpserver"
	"github.com/dmitrymomot/inputkit/pkg/input"
	"github.com/dmitrymomot/inputkit/pkg/logger"
	"github.com/dmitrymomot/inputkit/pkg/requestid"
	"github.com/dmitrymomot/inputkit/pkg/session"
)

type app struct {
	env      *input.Env
	prefix   string
	sessions *session.Manager
	resolver *clientip.Resolver
	checks   map[string]httpserver.Check
	log      *slog.Logger
}

func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(a.resolver.Middleware)

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log, a.checks))

	r.Group(func(r chi.Router) {
		r.Use(input.Middleware(input.WithLogger(a.log)))

		r.Get("/query", a.query)
		r.Post("/body", a.body)
		r.Get("/route/{name}", a.route)
		r.Get("/env/{key}", a.envVar)

		r.Route("/session", func(r chi.Router) {
			r.Use(fingerprint.Middleware(a.resolver))
			r.Use(a.sessions.Middleware)
			r.Get("/{key}", a.getSession)
			r.Post("/{key}", a.setSession)
		})
	})

	return r
}

// query echoes name, count and tags, coercing whatever the client sent.
func (a *app) query(w http.ResponseWriter, r *http.Request) {
	q, _ := input.QueryFromContext(r.Context())

	name, err := q.GetAsString("name", "guest")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	count, err := q.GetAsInt("count", 1)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	tags, err := q.GetAsArray("tags", input.Array{})
	if err != nil {
		a.fail(w, r, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{"name": name, "count": count, "tags": tags})
}

// body requires a text name and an int age; tags are optional.
func (a *app) body(w http.ResponseWriter, r *http.Request) {
	b, _ := input.BodyFromContext(r.Context())

	name, err := b.GetString("name")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	age, err := b.GetAsInt("age")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	tags, err := b.GetAsArray("tags", input.Array{})
	if err != nil {
		a.fail(w, r, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{"name": name, "age": age, "tags": tags})
}

func (a *app) route(w http.ResponseWriter, r *http.Request) {
	rt, _ := input.RouteFromContext(r.Context())

	name, err := rt.GetString("name")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"name": name})
}

func (a *app) envVar(w http.ResponseWriter, r *http.Request) {
	key := a.prefix + chi.URLParam(r, "key")

	value, err := a.env.GetString(key)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"key": key, "value": value})
}

func (a *app) getSession(w http.ResponseWriter, r *http.Request) {
	src := session.MustFromContext(r.Context())
	key := chi.URLParam(r, "key")

	v, err := src.Get(key, nil)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{
		"session_id": src.GetSessionID(),
		"key":        key,
		"kind":       input.KindOf(v).String(),
		"value":      v,
	})
}

// setSession stores the "value" field of the body under key, keeping the
// kind it was sent with.
func (a *app) setSession(w http.ResponseWriter, r *http.Request) {
	src := session.MustFromContext(r.Context())
	b, _ := input.BodyFromContext(r.Context())
	key := chi.URLParam(r, "key")

	v, err := b.Get("value", nil)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if err := src.Set(key, v); err != nil {
		a.fail(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{
		"session_id": src.GetSessionID(),
		"key":        key,
		"kind":       input.KindOf(v).String(),
		"value":      v,
	})
}

func (a *app) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, input.ErrMissingKey):
		code = http.StatusNotFound
	case errors.Is(err, input.ErrTypeMismatch):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, session.ErrSessionPaused), errors.Is(err, session.ErrSessionClosed):
		code = http.StatusConflict
	}

	if code == http.StatusInternalServerError {
		a.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	}
	a.writeJSON(w, code, map[string]string{"error": err.Error()})
}

func (a *app) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Error("failed to encode response", logger.Error(err))
	}
}
