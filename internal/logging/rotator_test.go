package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRotator_RotatesPastMaxSize(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, MaxSizeMB: 1, MaxBackups: 5})
	require.NoError(t, err)
	defer r.Close()

	chunk := bytes.Repeat([]byte("x"), 700*1024)
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "darkwatch.log.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)

	info, err := os.Stat(filepath.Join(dir, "darkwatch.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestLogRotator_Compress(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, Name: "watch.log", MaxSizeMB: 1, Compress: true})
	require.NoError(t, err)
	defer r.Close()

	chunk := bytes.Repeat([]byte("y"), 900*1024)
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "watch.log.*.gz"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
