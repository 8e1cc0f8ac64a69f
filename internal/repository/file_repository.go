package repository

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/tirasundara/mt940-parser/pkg/fileutil"
)

// FileRepository implements the StatementSource interface for statement files matching a glob pattern
type FileRepository struct {
	Pattern string
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(pattern string) *FileRepository {
	return &FileRepository{
		Pattern: pattern,
	}
}

// Files expands the pattern. Matches are sorted so files are always processed in the same order.
func (r *FileRepository) Files() ([]string, error) {
	matches, err := filepath.Glob(r.Pattern)
	if err != nil {
		return nil, fmt.Errorf("expanding pattern %q: %w", r.Pattern, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// ReadLines returns the raw lines of a statement file
func (r *FileRepository) ReadLines(path string) ([]string, error) {
	lines, err := fileutil.NewLineReader(path).ReadLines()
	if err != nil {
		return nil, fmt.Errorf("reading statement file: %w", err)
	}
	return lines, nil
}
