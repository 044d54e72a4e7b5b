package cli

import (
	"errors"
	"strings"

	"semgen/adapters/output"
	"semgen/domain/sem"
)

// ErrHelp is returned when --help or -h is present; the caller prints Usage and exits 0
var ErrHelp = errors.New("help requested")

// Flag names
const (
	FlagTiDBVersion               = "--tidb-version"
	FlagRestrictedDatabases       = "--restricted-databases"
	FlagRestrictedStatusVariables = "--restricted-status-variables"
	FlagRestrictedRules           = "--restricted-rules"
	FlagWorkbook                  = "--workbook"
	FlagFormat                    = "--format"
	FlagCheckSQL                  = "--check-sql"
	FlagHelp                      = "--help"
	FlagHelpShort                 = "-h"
)

// Usage is printed for --help
const Usage = `Usage: semgen [options]

Generates the SEM configuration document from the rule sheet exports
"TiDB SEM - System Variables.csv", "TiDB SEM - Privileges.csv",
"TiDB SEM - System Tables.csv" and "TiDB SEM - SQL.csv".

Options:
  --tidb-version <version>               TiDB version tag (default: v8.5.0)
  --restricted-databases <a,b,...>       Restricted databases (default: metrics_schema)
  --restricted-status-variables <a,...>  Restricted status variables (default: tidb_gc_leader_desc)
  --restricted-rules <a,b,...>           Restricted SQL rules
                                         (default: time_to_live,alter_table_attributes,import_with_external_id)
  --workbook <file.xlsx>                 Read the four sheets from one workbook instead of CSV files
  --format <json|yaml>                   Output encoding (default: json)
  --check-sql                            Warn about restricted SQL the MySQL grammar cannot parse
  -h, --help                             Show this help

Environment:
  SEM_INPUT_DIR, SEM_OUTPUT_FILE, SEM_WORKBOOK, SEM_OUTPUT_FORMAT, LOG_LEVEL
`

// Options is the interpreted command line
type Options struct {
	Overrides sem.Overrides
	Workbook  string
	Format    output.Format
	CheckSQL  bool
}

// ParseArgs interprets the invocation arguments left to right. Value flags
// consume the next argument verbatim; a value flag at the end of the list is
// ignored, as are unrecognized arguments.
func ParseArgs(args []string) (Options, error) {
	var opts Options

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case FlagHelp, FlagHelpShort:
			return Options{}, ErrHelp
		case FlagCheckSQL:
			opts.CheckSQL = true
			continue
		case FlagTiDBVersion, FlagRestrictedDatabases, FlagRestrictedStatusVariables,
			FlagRestrictedRules, FlagWorkbook, FlagFormat:
		default:
			continue
		}

		if i+1 >= len(args) {
			continue
		}
		i++
		value := args[i]

		switch arg {
		case FlagTiDBVersion:
			v := value
			opts.Overrides.TiDBVersion = &v
		case FlagRestrictedDatabases:
			opts.Overrides.RestrictedDatabases = strings.Split(value, ",")
		case FlagRestrictedStatusVariables:
			opts.Overrides.RestrictedStatusVariables = strings.Split(value, ",")
		case FlagRestrictedRules:
			opts.Overrides.RestrictedRules = strings.Split(value, ",")
		case FlagWorkbook:
			opts.Workbook = value
		case FlagFormat:
			if format, err := output.ParseFormat(value); err == nil {
				opts.Format = format
			}
		}
	}

	return opts, nil
}
