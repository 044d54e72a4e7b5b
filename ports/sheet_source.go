package ports

import (
	"context"

	"semgen/domain/sem"
)

// SheetSourcePort provides the parsed rows of the SEM rule sheets
type SheetSourcePort interface {
	// ReadSheet returns the data rows of one sheet in file order
	ReadSheet(ctx context.Context, kind sem.SheetKind) ([]sem.Row, error)

	// Location describes where sheets are read from, for diagnostics
	Location() string
}

// ConfigWriterPort persists the assembled SEM document
type ConfigWriterPort interface {
	Write(ctx context.Context, cfg sem.Config) (string, error)
}

// SQLCheckerPort inspects restricted SQL statements without altering them
type SQLCheckerPort interface {
	// Check returns one finding per statement the checker could not accept
	Check(statements []string) []SQLFinding
}

// SQLFinding reports a restricted statement the checker rejected
type SQLFinding struct {
	Index     int
	Statement string
	Reason    string
}
