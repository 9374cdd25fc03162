// Package testutil holds helpers shared by the package tests. It depends on
// nothing inside the module so that any package can use it.
package testutil

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/kuilang/internal/ctxlog"
	"github.com/stretchr/testify/require"
)

// LogsEnv enables dumping captured logs at the end of a test.
const LogsEnv = "KUI_TEST_LOGS"

// Logger returns a debug-level text logger writing into a SafeBuffer. The
// buffer is printed with t.Logf when KUI_TEST_LOGS=true.
func Logger(t *testing.T) (*slog.Logger, *SafeBuffer) {
	t.Helper()

	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Cleanup(func() {
		if os.Getenv(LogsEnv) == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), buf.String())
		}
	})
	return logger, buf
}

// Context returns a context carrying a test logger.
func Context(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()
	logger, buf := Logger(t)
	return ctxlog.WithLogger(context.Background(), logger), buf
}

// WriteFiles writes files, keyed by slash-separated relative path, below a
// fresh temporary directory and returns that directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}
