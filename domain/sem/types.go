package sem

// Row is one data line of a rule sheet, keyed by header name
type Row map[string]string

// Get returns the value for a field, or "" when the sheet has no such column
func (r Row) Get(field string) string {
	return r[field]
}

// RestrictedVariable is a system variable hidden or made read-only under SEM
type RestrictedVariable struct {
	Name   string `json:"name" yaml:"name"`
	Hidden bool   `json:"hidden" yaml:"hidden"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
}

// RestrictedTable is a system table hidden under SEM
type RestrictedTable struct {
	Schema string `json:"schema" yaml:"schema"`
	Name   string `json:"name" yaml:"name"`
	Hidden bool   `json:"hidden" yaml:"hidden"`
}

// RestrictedSQL holds the SQL rule names and the literal restricted statements
type RestrictedSQL struct {
	Rule []string `json:"rule" yaml:"rule"`
	SQL  []string `json:"sql" yaml:"sql"`
}

// Config is the root SEM configuration document
type Config struct {
	Version                   string               `json:"version" yaml:"version"`
	TiDBVersion               string               `json:"tidb_version" yaml:"tidb_version"`
	RestrictedDatabases       []string             `json:"restricted_databases" yaml:"restricted_databases"`
	RestrictedTables          []RestrictedTable    `json:"restricted_tables" yaml:"restricted_tables"`
	RestrictedStatusVariables []string             `json:"restricted_status_variables" yaml:"restricted_status_variables"`
	RestrictedVariables       []RestrictedVariable `json:"restricted_variables" yaml:"restricted_variables"`
	RestrictedPrivileges      []string             `json:"restricted_privileges" yaml:"restricted_privileges"`
	RestrictedSQL             RestrictedSQL        `json:"restricted_sql" yaml:"restricted_sql"`
}

// Overrides carries caller-supplied replacements for the built-in defaults.
// A nil field means "not supplied".
type Overrides struct {
	TiDBVersion               *string
	RestrictedDatabases       []string
	RestrictedStatusVariables []string
	RestrictedRules           []string
}

// Sheets groups the parsed rows of the four rule sheets
type Sheets struct {
	Variables  []Row
	Privileges []Row
	Tables     []Row
	SQL        []Row
}

// SheetKind identifies one of the four rule sheets
type SheetKind string

const (
	SheetVariables  SheetKind = "System Variables"
	SheetPrivileges SheetKind = "Privileges"
	SheetTables     SheetKind = "System Tables"
	SheetSQL        SheetKind = "SQL"
)

// AllSheets lists the sheets in the order they are read
var AllSheets = []SheetKind{SheetVariables, SheetPrivileges, SheetTables, SheetSQL}

// FileName returns the conventional CSV export name for the sheet
func (k SheetKind) FileName() string {
	return "TiDB SEM - " + string(k) + ".csv"
}

// Set stores rows for the given sheet
func (s *Sheets) Set(kind SheetKind, rows []Row) {
	switch kind {
	case SheetVariables:
		s.Variables = rows
	case SheetPrivileges:
		s.Privileges = rows
	case SheetTables:
		s.Tables = rows
	case SheetSQL:
		s.SQL = rows
	}
}
