package pages

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"lazypager/internal/domain"
)

// ErrNoPages is returned by Scan when a directory holds no page files
var ErrNoPages = errors.New("no pages found")

// Extensions lists the file types treated as pages
var Extensions = []string{".txt", ".md", ".markdown", ".text"}

// Scan lists the page files of dir in name order
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !hasPageExtension(name) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPages, dir)
	}
	return files, nil
}

func hasPageExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Source materializes pages from files on demand.
// Only pages inside the pager window are held in memory.
type Source struct {
	dir    string
	files  []string
	live   map[int]*domain.Page
	loads  int
	logger *log.Logger
}

// NewSource creates a source for the page files of dir. Call Rescan to list them.
func NewSource(dir string, logger *log.Logger) *Source {
	if logger == nil {
		logger = log.Default()
	}
	return &Source{
		dir:    dir,
		live:   make(map[int]*domain.Page),
		logger: logger.WithPrefix("pages"),
	}
}

// Dir returns the directory the pages are read from
func (s *Source) Dir() string {
	return s.dir
}

// Rescan relists the directory and returns the page count.
// An empty directory yields a count of 0 together with ErrNoPages.
func (s *Source) Rescan() (int, error) {
	files, err := Scan(s.dir)
	s.files = files
	if err != nil {
		return 0, err
	}
	s.logger.Info("scanned pages", "dir", s.dir, "count", len(files))
	return len(files), nil
}

// Count returns the number of pages found by the last scan
func (s *Source) Count() int {
	return len(s.files)
}

// Path returns the file behind page index
func (s *Source) Path(index int) string {
	if index < 0 || index >= len(s.files) {
		return ""
	}
	return s.files[index]
}

// Provide reads the page at index
func (s *Source) Provide(index int) *domain.Page {
	path := s.Path(index)
	page := &domain.Page{Index: index, Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("failed to read page", "index", index, "path", path, "err", err)
		page.Title = filepath.Base(path)
		page.Body = fmt.Sprintf("cannot read %s: %v", path, err)
	} else {
		page.Title, page.Body = splitTitle(string(data), filepath.Base(path))
	}

	s.live[index] = page
	s.loads++
	s.logger.Debug("page materialized", "index", index, "live", len(s.live))
	return page
}

// Release drops a page that left the window
func (s *Source) Release(page *domain.Page) {
	if page == nil {
		return
	}
	delete(s.live, page.Index)
	s.logger.Debug("page released", "index", page.Index, "live", len(s.live))
}

// Live returns how many pages are currently materialized
func (s *Source) Live() int {
	return len(s.live)
}

// Loads returns how many times a page was read from disk
func (s *Source) Loads() int {
	return s.loads
}

// splitTitle takes a leading markdown heading as the title, otherwise the file name
func splitTitle(content, fallback string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	first, rest, _ := strings.Cut(content, "\n")
	if strings.HasPrefix(first, "# ") {
		return strings.TrimSpace(strings.TrimPrefix(first, "# ")), strings.TrimLeft(rest, "\n")
	}
	return strings.TrimSuffix(fallback, filepath.Ext(fallback)), content
}
