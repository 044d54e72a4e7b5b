package app

import (
	"context"
	"fmt"

	"semgen/domain/sem"
	"semgen/internal"
	"semgen/internal/errors"
	"semgen/ports"

	"github.com/jinzhu/inflection"
)

// GeneratorService turns the rule sheets into the written SEM document
type GeneratorService struct {
	source  ports.SheetSourcePort
	writer  ports.ConfigWriterPort
	checker ports.SQLCheckerPort
	logger  *internal.Logger
}

// GenerateRequest defines the inputs of one generation run
type GenerateRequest struct {
	Overrides sem.Overrides
	CheckSQL  bool
}

// GenerateResult contains the outcome of a generation run
type GenerateResult struct {
	OutputPath string             `json:"output_path"`
	Config     sem.Config         `json:"config"`
	Summary    Summary            `json:"summary"`
	Findings   []ports.SQLFinding `json:"findings,omitempty"`
}

// Summary counts the entries produced from each sheet
type Summary struct {
	Variables     int `json:"variables"`
	Privileges    int `json:"privileges"`
	Tables        int `json:"tables"`
	SQLStatements int `json:"sql_statements"`
}

// NewGeneratorService creates a generator service. checker may be nil when
// SQL checking is never requested.
func NewGeneratorService(source ports.SheetSourcePort, writer ports.ConfigWriterPort, checker ports.SQLCheckerPort, logger *internal.Logger) *GeneratorService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &GeneratorService{
		source:  source,
		writer:  writer,
		checker: checker,
		logger:  logger,
	}
}

// Generate reads the four sheets, assembles the document and writes it
func (s *GeneratorService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	sheets, err := s.ReadSheets(ctx)
	if err != nil {
		return nil, err
	}

	cfg := sem.BuildConfigFromSheets(sheets, req.Overrides)

	var findings []ports.SQLFinding
	if req.CheckSQL && s.checker != nil {
		findings = s.checker.Check(cfg.RestrictedSQL.SQL)
		for _, f := range findings {
			s.logger.Warn("restricted SQL #%d %q does not parse: %s", f.Index+1, f.Statement, f.Reason)
		}
	}

	path, err := s.writer.Write(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		OutputPath: path,
		Config:     cfg,
		Summary:    Summarize(cfg),
		Findings:   findings,
	}, nil
}

// ReadSheets reads every rule sheet from the source in order
func (s *GeneratorService) ReadSheets(ctx context.Context) (sem.Sheets, error) {
	var sheets sem.Sheets
	for _, kind := range sem.AllSheets {
		rows, err := s.source.ReadSheet(ctx, kind)
		if err != nil {
			return sem.Sheets{}, errors.Wrapf(err, "failed to load %s sheet from %s", kind, s.source.Location())
		}
		s.logger.Debug("loaded %d %s rows", len(rows), kind)
		sheets.Set(kind, rows)
	}
	return sheets, nil
}

// Summarize counts the restricted entries of an assembled document
func Summarize(cfg sem.Config) Summary {
	return Summary{
		Variables:     len(cfg.RestrictedVariables),
		Privileges:    len(cfg.RestrictedPrivileges),
		Tables:        len(cfg.RestrictedTables),
		SQLStatements: len(cfg.RestrictedSQL.SQL),
	}
}

// Lines renders the summary as the report lines printed after a run
func (s Summary) Lines() []string {
	counts := []struct {
		noun  string
		count int
	}{
		{"variable", s.Variables},
		{"privilege", s.Privileges},
		{"table", s.Tables},
		{"SQL statement", s.SQLStatements},
	}

	lines := make([]string, len(counts))
	for i, c := range counts {
		lines[i] = fmt.Sprintf("- Restricted %s: %d", inflection.Plural(c.noun), c.count)
	}
	return lines
}
