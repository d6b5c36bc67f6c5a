package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfelder/dotwalk/pkg/cache"
	dotio "github.com/mfelder/dotwalk/pkg/io"
	"github.com/mfelder/dotwalk/pkg/render"
)

// artifactTTL bounds how long rasterized artifacts stay cached.
const artifactTTL = 30 * 24 * time.Hour

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	renderOpts

	format  string // output format: svg, png or dot
	noCache bool   // disable the artifact cache
	cacheD  string // override the cache directory
	redis   string // redis address for a shared cache
}

// newExportCmd creates the export command, rasterizing a graph document to
// an image file.
func newExportCmd() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Rasterize a graph document to SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args[0], &opts)
		},
	}

	addRenderFlags(cmd, &opts.renderOpts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: svg, png, dot")
	addCacheFlags(cmd, &opts.noCache, &opts.cacheD, &opts.redis)

	return cmd
}

// addCacheFlags registers the artifact cache flags, shared by export and
// serve.
func addCacheFlags(cmd *cobra.Command, noCache *bool, dir, redis *string) {
	cmd.Flags().BoolVar(noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(dir, "cache-dir", "", "artifact cache directory (default user cache dir)")
	cmd.Flags().StringVar(redis, "redis", "", "redis address for a shared artifact cache (host:port)")
}

// openCache builds the artifact cache from the flags. Failures degrade to a
// null cache with a warning rather than failing the command.
func openCache(ctx context.Context, noCache bool, dir, redisAddr string) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}

	if redisAddr != "" {
		c, err := cache.NewRedisCache(ctx, redisAddr)
		if err != nil {
			printWarning("Redis cache unavailable (%v), caching disabled", err)
			return cache.NewNullCache()
		}
		return cache.NewScoped(c, "dotwalk:")
	}

	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			printWarning("No cache directory (%v), caching disabled", err)
			return cache.NewNullCache()
		}
		dir = d
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		printWarning("Cache directory unusable (%v), caching disabled", err)
		return cache.NewNullCache()
	}
	return c
}

// runExport loads the graph document, renders DOT, and rasterizes it to the
// requested format, consulting the artifact cache first.
func runExport(ctx context.Context, input string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	g, err := dotio.Load(input)
	if err != nil {
		return err
	}

	dotText, err := g.DOT(opts.dotOptions())
	if err != nil {
		return err
	}

	artifacts := openCache(ctx, opts.noCache, opts.cacheD, opts.redis)
	defer artifacts.Close()

	key := cache.ArtifactKey(dotText, string(format))
	data, hit, err := artifacts.Get(ctx, key)
	if err != nil {
		logger.Debugf("cache read failed: %v", err)
	}

	if !hit {
		spinner := newSpinner(fmt.Sprintf("Rendering %s...", format))
		spinner.Start()
		data, err = render.Render(ctx, dotText, format)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return err
		}
		spinner.Stop()

		if err := artifacts.Set(ctx, key, data, artifactTTL); err != nil {
			logger.Debugf("cache write failed: %v", err)
		}
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + string(format)
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Exported %s", input))
	printStats(len(g.Nodes), len(g.Edges), hit)
	printFile(output)
	return nil
}
