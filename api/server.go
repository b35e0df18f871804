// Package api serves the rendered GIFs as a small gallery and lets clients
// trigger renders over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rhythmix/docanim/demo"
	"github.com/rhythmix/docanim/manifest"
	"github.com/rhythmix/docanim/render"
)

// Renderer renders a demo by name.
type Renderer interface {
	Render(ctx context.Context, name string, force bool) (render.Result, error)
}

// Records looks up the last render of a demo.
type Records interface {
	Get(name string) (manifest.Record, error)
}

// Api is the gallery server.
type Api struct {
	Addr     string
	Names    []string
	OutDir   string
	Renderer Renderer
	Records  Records
	Metrics  http.Handler
}

// NewApi creates an instance of an Api serving the runner's demos.
func NewApi(addr string, runner *render.Runner, store *manifest.Store, gatherer prometheus.Gatherer) *Api {
	a := new(Api)
	a.Addr = addr
	a.Names = runner.Registry().Names()
	a.OutDir = runner.OutDir()
	a.Renderer = runner
	a.Records = store
	a.Metrics = promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	return a
}

// DemoInfo is a demo name with its last render, if any.
type DemoInfo struct {
	Name   string           `json:"name"`
	Record *manifest.Record `json:"record,omitempty"`
}

// GIF is the gallery path of the rendered file.
func (d DemoInfo) GIF() string {
	if d.Record == nil {
		return ""
	}
	return "/gifs/" + filepath.Base(d.Record.File)
}

// Handler returns the router for every endpoint.
func (a *Api) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", a.gallery)
	r.Get("/api/demos", a.listDemos)
	r.Post("/api/demos/{name}/render", a.renderDemo)
	r.Handle("/gifs/*", http.StripPrefix("/gifs/", http.FileServer(http.Dir(a.OutDir))))
	if a.Metrics != nil {
		r.Handle("/metrics", a.Metrics)
	}
	return r
}

// Serve listens on Addr until ctx is cancelled, then shuts down gracefully.
func (a *Api) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("Listening...", "addr", a.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *Api) demos() []DemoInfo {
	infos := make([]DemoInfo, 0, len(a.Names))
	for _, name := range a.Names {
		info := DemoInfo{Name: name}
		rec, err := a.Records.Get(name)
		switch {
		case err == nil:
			info.Record = &rec
		case !errors.Is(err, manifest.ErrNotFound):
			slog.Warn("manifest read failed", "demo", name, "err", err)
		}
		infos = append(infos, info)
	}
	return infos
}

func (a *Api) listDemos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.demos())
}

func (a *Api) renderDemo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	force := r.URL.Query().Get("force") == "true"

	res, err := a.Renderer.Render(r.Context(), name, force)
	switch {
	case errors.Is(err, demo.ErrUnknownDemo):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		slog.Error("render failed", "demo", name, "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (a *Api) gallery(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := galleryTemplate.Execute(w, a.demos()); err != nil {
		slog.Error("gallery", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

var galleryTemplate = template.Must(template.New("gallery").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <title>docanim</title>
    <style>
        body { background: #111; color: #eee; font-family: sans-serif; }
        figure { display: inline-block; margin: 1em; }
        .pending { color: #888; }
    </style>
</head>
<body>
<h1>Demos</h1>
{{range .}}
<figure>
    {{if .Record}}<img src="{{.GIF}}" alt="{{.Name}}" />{{else}}<p class="pending">not rendered</p>{{end}}
    <figcaption>{{.Name}}</figcaption>
</figure>
{{end}}
</body>
</html>
`))
