package sqlcheck

import (
	"strings"

	"semgen/ports"

	"vitess.io/vitess/go/vt/sqlparser"
)

// Checker parses restricted SQL entries with the MySQL grammar and reports
// the ones it cannot read. TiDB-only syntax is expected to show up here;
// findings are advisory and never change the generated document.
type Checker struct{}

// NewChecker creates a MySQL-grammar checker
func NewChecker() *Checker {
	return &Checker{}
}

// Check returns one finding per statement that fails to parse
func (c *Checker) Check(statements []string) []ports.SQLFinding {
	var findings []ports.SQLFinding
	for i, stmt := range statements {
		if reason := c.checkOne(stmt); reason != "" {
			findings = append(findings, ports.SQLFinding{Index: i, Statement: stmt, Reason: reason})
		}
	}
	return findings
}

func (c *Checker) checkOne(stmt string) string {
	if strings.TrimSpace(stmt) == "" {
		return "empty statement"
	}

	pieces, err := sqlparser.SplitStatementToPieces(stmt)
	if err != nil {
		return err.Error()
	}
	for _, p := range pieces {
		if _, _, err := sqlparser.Parse2(p); err != nil {
			return err.Error()
		}
	}
	return ""
}
