package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/mfelder/dotwalk/pkg/cache"
	"github.com/mfelder/dotwalk/pkg/dot"
	"github.com/mfelder/dotwalk/pkg/errors"
	dotio "github.com/mfelder/dotwalk/pkg/io"
	"github.com/mfelder/dotwalk/pkg/render"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	renderOpts

	addr    string
	noCache bool
	cacheD  string
	redis   string
}

// newServeCmd creates the serve command, a local preview server that
// re-reads the graph document on every request so edits show up on reload.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a live browser preview of a graph document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], &opts)
		},
	}

	addRenderFlags(cmd, &opts.renderOpts)
	cmd.Flags().StringVar(&opts.addr, "addr", "127.0.0.1:8088", "listen address")
	addCacheFlags(cmd, &opts.noCache, &opts.cacheD, &opts.redis)

	return cmd
}

// preview bundles the state shared by the HTTP handlers.
type preview struct {
	input     string
	opts      dot.Options
	artifacts cache.Cache
}

func runServe(ctx context.Context, input string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	// Fail early on unreadable documents instead of at first request.
	if _, err := dotio.Load(input); err != nil {
		return err
	}

	p := &preview{
		input:     input,
		opts:      opts.dotOptions(),
		artifacts: openCache(ctx, opts.noCache, opts.cacheD, opts.redis),
	}
	defer p.artifacts.Close()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Get("/", p.page)
	r.Get("/graph.svg", p.artifact(render.FormatSVG))
	r.Get("/graph.png", p.artifact(render.FormatPNG))
	r.Get("/graph.dot", p.artifact(render.FormatDOT))

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	printSuccess("Serving %s", input)
	printDetail("http://%s", opts.addr)
	logger.Infof("listening on %s", opts.addr)

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger injects the command logger into each request context and
// logs the request line with its duration at debug level.
func requestLogger(logger *charmlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), logger)))
			logger.Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
		})
	}
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<title>dotwalk: %s</title>
<style>
body { margin: 0; background: #f4f4f4; font-family: sans-serif; }
header { padding: 0.5rem 1rem; background: #222; color: #eee; font-size: 0.9rem; }
header a { color: #9cf; margin-left: 1rem; }
main { padding: 1rem; }
object { width: 100%%; max-height: 90vh; }
</style>
</head>
<body>
<header>%s<a href="/graph.svg">svg</a><a href="/graph.png">png</a><a href="/graph.dot">dot</a></header>
<main><object type="image/svg+xml" data="/graph.svg"></object></main>
</body>
</html>
`

// page serves the HTML shell embedding the SVG.
func (p *preview) page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageTemplate, p.input, p.input)
}

var contentTypes = map[render.Format]string{
	render.FormatDOT: "text/vnd.graphviz; charset=utf-8",
	render.FormatSVG: "image/svg+xml",
	render.FormatPNG: "image/png",
}

// artifact renders the document in the given format, serving from the
// artifact cache when the DOT text is unchanged.
func (p *preview) artifact(format render.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := loggerFromContext(ctx)

		g, err := dotio.Load(p.input)
		if err != nil {
			http.Error(w, errors.UserMessage(err), http.StatusUnprocessableEntity)
			return
		}
		dotText, err := g.DOT(p.opts)
		if err != nil {
			http.Error(w, errors.UserMessage(err), http.StatusUnprocessableEntity)
			return
		}

		key := cache.ArtifactKey(dotText, string(format))
		data, hit, err := p.artifacts.Get(ctx, key)
		if err != nil {
			logger.Debugf("cache read failed: %v", err)
		}
		if !hit {
			data, err = render.Render(ctx, dotText, format)
			if err != nil {
				http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
				return
			}
			if err := p.artifacts.Set(ctx, key, data, artifactTTL); err != nil {
				logger.Debugf("cache write failed: %v", err)
			}
		}

		w.Header().Set("Content-Type", contentTypes[format])
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(data)
	}
}
