package output

import (
	"context"
	"os"

	"semgen/domain/sem"
	"semgen/internal"
	"semgen/internal/errors"
)

// FileWriter writes the encoded SEM document to a fixed path
type FileWriter struct {
	path   string
	format Format
	logger *internal.Logger
}

// NewFileWriter creates a writer; an empty path falls back to the format's default
func NewFileWriter(path string, format Format, logger *internal.Logger) *FileWriter {
	if format == "" {
		format = FormatJSON
	}
	if path == "" {
		path = format.DefaultPath()
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &FileWriter{path: path, format: format, logger: logger}
}

// Path returns the output file path
func (w *FileWriter) Path() string {
	return w.path
}

// Write encodes cfg and writes it in one call, returning the path written
func (w *FileWriter) Write(ctx context.Context, cfg sem.Config) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := Encode(cfg, w.format)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return "", errors.WriteError(w.path, err)
	}

	w.logger.Info("[FileWriter] wrote %d bytes of %s to %s", len(data), w.format, w.path)
	return w.path, nil
}
