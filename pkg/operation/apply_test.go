package operation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/remaprc/pkg/config"
	"github.com/walteh/remaprc/pkg/rewrite"
	"github.com/walteh/remaprc/pkg/status"
)

func newTestOperator(t *testing.T, cfg *config.Config, opts ...func(*Options)) *Operator {
	t.Helper()

	logger := zerolog.Nop()
	o := Options{
		Config:    cfg,
		StatusMgr: status.New(&logger),
	}
	for _, fn := range opts {
		fn(&o)
	}

	op, err := New(o)
	require.NoError(t, err)
	return op
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestOperator_Apply(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"app.conf":   "host = api.example.com in production",
		"other.conf": "nothing relevant here",
	})

	cfg := &config.Config{
		Mapping: []config.MappingEntry{
			{Search: "example.com", Replace: "example-int.com"},
			{Search: "api.example.com", Replace: "next-api.example-int.com"},
			{Search: "production", Replace: "integration"},
		},
	}
	op := newTestOperator(t, cfg)

	appConf := filepath.Join(dir, "app.conf")
	otherConf := filepath.Join(dir, "other.conf")
	require.NoError(t, op.Apply(ctx, []string{appConf, otherConf}))

	assert.Equal(t, "host = next-api.example-int.com in integration", readFile(t, appConf))
	assert.Equal(t, "nothing relevant here", readFile(t, otherConf))

	info, err := op.statusMgr.GetFileInfo(ctx, appConf)
	require.NoError(t, err)
	assert.Equal(t, status.StatusRewritten, info.Status)
	assert.Equal(t, 2, info.Replacements)

	info, err = op.statusMgr.GetFileInfo(ctx, otherConf)
	require.NoError(t, err)
	assert.Equal(t, status.StatusUnchanged, info.Status)
}

func TestOperator_Apply_GlobsAndIgnores(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"conf/a.ini":      "alpha",
		"conf/sub/b.ini":  "alpha",
		"conf/sub/c.bak":  "alpha",
		"conf/readme.txt": "alpha",
	})

	cfg := &config.Config{
		Mapping: []config.MappingEntry{{Search: "alpha", Replace: "beta"}},
		Files:   []string{filepath.Join(dir, "conf", "**", "*.ini"), filepath.Join(dir, "conf", "**", "*.bak")},
		Ignore:  []string{"**/*.bak"},
	}
	op := newTestOperator(t, cfg)

	require.NoError(t, op.Apply(ctx, nil))

	assert.Equal(t, "beta", readFile(t, filepath.Join(dir, "conf/a.ini")))
	assert.Equal(t, "beta", readFile(t, filepath.Join(dir, "conf/sub/b.ini")))
	assert.Equal(t, "alpha", readFile(t, filepath.Join(dir, "conf/sub/c.bak")), "ignored file should be untouched")
	assert.Equal(t, "alpha", readFile(t, filepath.Join(dir, "conf/readme.txt")), "unmatched file should be untouched")

	info, err := op.statusMgr.GetFileInfo(ctx, filepath.Join(dir, "conf/sub/c.bak"))
	require.NoError(t, err)
	assert.Equal(t, status.StatusSkipped, info.Status)
}

func TestOperator_Apply_DryRun(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"app.conf": "alpha"})
	path := filepath.Join(dir, "app.conf")

	cfg := &config.Config{
		Mapping: []config.MappingEntry{{Search: "alpha", Replace: "beta"}},
	}
	op := newTestOperator(t, cfg, func(o *Options) { o.DryRun = true })

	require.NoError(t, op.Apply(ctx, []string{path}))

	assert.Equal(t, "alpha", readFile(t, path), "dry run must not write")

	info, err := op.statusMgr.GetFileInfo(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, status.StatusRewritten, info.Status, "dry run still reports what would change")
	assert.Equal(t, 1, info.Replacements)
}

func TestOperator_Apply_Backup(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"app.conf": "alpha"})
	path := filepath.Join(dir, "app.conf")

	cfg := &config.Config{
		Mapping: []config.MappingEntry{{Search: "alpha", Replace: "beta"}},
	}
	op := newTestOperator(t, cfg, func(o *Options) { o.Backup = true })

	require.NoError(t, op.Apply(ctx, []string{path}))

	assert.Equal(t, "beta", readFile(t, path))
	assert.Equal(t, "alpha", readFile(t, path+".bak"), "backup should hold the original")
}

func TestOperator_Apply_InvalidTableAbortsBeforeAnyWrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"app.conf": "alpha"})
	path := filepath.Join(dir, "app.conf")

	cfg := &config.Config{
		Mapping: []config.MappingEntry{
			{Search: "alpha", Replace: "beta"},
			{Search: "alpha", Replace: "gamma"},
		},
	}
	op := newTestOperator(t, cfg)

	err := op.Apply(ctx, []string{path})
	require.Error(t, err)

	var verr *rewrite.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"alpha"}, verr.Keys)

	assert.Equal(t, "alpha", readFile(t, path), "no output may be produced on validation failure")
}

func TestOperator_Apply_Async(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	files := map[string]string{}
	for _, name := range []string{"a.conf", "b.conf", "c.conf", "d.conf"} {
		files[name] = "left right"
	}
	writeFiles(t, dir, files)

	cfg := &config.Config{
		Mapping: []config.MappingEntry{
			{Search: "left", Replace: "right"},
			{Search: "right", Replace: "left"},
		},
		Async: true,
	}
	op := newTestOperator(t, cfg)

	var paths []string
	for name := range files {
		paths = append(paths, filepath.Join(dir, name))
	}
	require.NoError(t, op.Apply(ctx, paths))

	for name := range files {
		assert.Equal(t, "right left", readFile(t, filepath.Join(dir, name)), "each file's run owns its own tokens")
	}

	processed, total := op.statusMgr.Progress(ctx)
	assert.Equal(t, len(files), total)
	assert.Equal(t, len(files), processed, "async runs must keep progress tracking alive")
}

func TestOperator_Apply_MissingFile(t *testing.T) {
	ctx := context.Background()

	cfg := &config.Config{
		Mapping: []config.MappingEntry{{Search: "a", Replace: "b"}},
	}
	op := newTestOperator(t, cfg)

	err := op.Apply(ctx, []string{filepath.Join(t.TempDir(), "missing.conf")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "processing file")
}

func TestNew_RequiredOptions(t *testing.T) {
	logger := zerolog.Nop()

	_, err := New(Options{StatusMgr: status.New(&logger)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config is required")

	_, err = New(Options{Config: &config.Config{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status manager is required")
}
