package cli

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mfelder/dotwalk/pkg/cache"
	"github.com/mfelder/dotwalk/pkg/render"
)

const testDoc = `{
  "name": "deps",
  "nodes": [{"id": "a"}, {"id": "b"}],
  "edges": [{"from": "a", "to": "b"}]
}`

func writeTestDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "g.json")
	if err := os.WriteFile(path, []byte(testDoc), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunRender(t *testing.T) {
	input := writeTestDoc(t)
	output := filepath.Join(t.TempDir(), "g.dot")

	opts := renderOpts{output: output}
	if err := runRender(context.Background(), input, &opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "digraph deps {") {
		t.Errorf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "a -> b") {
		t.Errorf("missing edge statement: %q", out)
	}
}

func TestRunExportDOT(t *testing.T) {
	input := writeTestDoc(t)
	output := filepath.Join(t.TempDir(), "out.dot")

	opts := exportOpts{format: "dot", cacheD: t.TempDir()}
	opts.output = output
	if err := runExport(context.Background(), input, &opts); err != nil {
		t.Fatalf("runExport: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "a -> b") {
		t.Errorf("missing edge statement: %q", data)
	}

	// Second run hits the artifact cache and must produce the same bytes.
	if err := runExport(context.Background(), input, &opts); err != nil {
		t.Fatalf("second runExport: %v", err)
	}
	again, _ := os.ReadFile(output)
	if string(again) != string(data) {
		t.Error("cached export differs from fresh export")
	}
}

func TestRunExportBadFormat(t *testing.T) {
	input := writeTestDoc(t)
	opts := exportOpts{format: "gif"}
	if err := runExport(context.Background(), input, &opts); err == nil {
		t.Error("want error for unknown format")
	}
}

func TestOpenCacheDisabled(t *testing.T) {
	c := openCache(context.Background(), true, "", "")
	defer c.Close()
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("want NullCache, got %T", c)
	}
}

func TestPreviewArtifactDOT(t *testing.T) {
	input := writeTestDoc(t)
	p := &preview{
		input:     input,
		artifacts: cache.NewNullCache(),
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/graph.dot", nil)
	p.artifact(render.FormatDOT)(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/vnd.graphviz") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "a -> b") {
		t.Errorf("missing edge statement: %q", rec.Body.String())
	}
}

func TestPreviewArtifactBadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"nodes": [{"id": "a"}, {"id": "a"}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	p := &preview{input: path, artifacts: cache.NewNullCache()}
	rec := httptest.NewRecorder()
	p.artifact(render.FormatDOT)(rec, httptest.NewRequest("GET", "/graph.dot", nil))

	if rec.Code != 422 {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}
