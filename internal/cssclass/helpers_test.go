package cssclass

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var quietLogger = slog.New(slog.DiscardHandler)

// writeCSS creates name under dir and returns its path
func writeCSS(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// touch sets both access and modification time of p
func touch(t *testing.T, p string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(p, mtime, mtime))
}

// countingFS records how often the disk is consulted
type countingFS struct {
	OSFileSystem
	reads    atomic.Int64
	stats    atomic.Int64
	failRead map[string]bool
}

func (c *countingFS) Stat(name string) (fs.FileInfo, error) {
	c.stats.Add(1)
	return c.OSFileSystem.Stat(name)
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.reads.Add(1)
	if c.failRead[name] {
		return nil, errors.New("permission denied")
	}
	return c.OSFileSystem.ReadFile(name)
}
