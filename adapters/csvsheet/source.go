package csvsheet

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"semgen/domain/core"
	"semgen/domain/sem"
	"semgen/internal"
	"semgen/internal/errors"
)

// DirSource reads the CSV exports of the rule sheets from one directory
type DirSource struct {
	dir    string
	logger *internal.Logger
}

// NewDirSource creates a source rooted at dir; an empty dir means the working directory
func NewDirSource(dir string, logger *internal.Logger) *DirSource {
	if dir == "" {
		dir = "."
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DirSource{dir: dir, logger: logger}
}

// Location returns the directory sheets are read from
func (s *DirSource) Location() string {
	return s.dir
}

// Path returns the file path of a sheet's CSV export
func (s *DirSource) Path(kind sem.SheetKind) string {
	return filepath.Join(s.dir, kind.FileName())
}

// ReadSheet reads and parses one sheet's CSV export
func (s *DirSource) ReadSheet(ctx context.Context, kind sem.SheetKind) ([]sem.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(kind)
	content, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFound(path, core.NewSheetNotFoundError(string(kind), s.dir))
		}
		return nil, errors.InvalidInput("failed to read "+path, err)
	}

	rows := Parse(string(content))
	s.logger.Debug("[csvsheet] %s: %d rows from %s", kind, len(rows), path)
	return rows, nil
}
