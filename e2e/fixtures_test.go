//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writePages adds markdown pages titled "Page from".."Page to" to dir
func writePages(t *testing.T, dir string, from, to int) {
	t.Helper()
	for i := from; i <= to; i++ {
		name := filepath.Join(dir, fmt.Sprintf("%02d-page.md", i))
		body := fmt.Sprintf("# Page %d\n\nThis is the body of page %d.\n", i, i)
		require.NoError(t, os.WriteFile(name, []byte(body), 0644))
	}
}

// pagesDir returns a fresh directory holding n pages
func pagesDir(t *testing.T, n int) string {
	t.Helper()
	dir := t.TempDir()
	writePages(t, dir, 1, n)
	return dir
}

func configPath(dir string) string {
	return filepath.Join(dir, ".lazypager.toml")
}
