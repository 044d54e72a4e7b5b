package sem

// ConfigVersion is the schema version of the generated document
const ConfigVersion = "1.0"

// Built-in defaults applied when no override is supplied
const DefaultTiDBVersion = "v8.5.0"

// DefaultRestrictedDatabases returns the default restricted database list
func DefaultRestrictedDatabases() []string {
	return []string{"metrics_schema"}
}

// DefaultRestrictedStatusVariables returns the default restricted status variables
func DefaultRestrictedStatusVariables() []string {
	return []string{"tidb_gc_leader_desc"}
}

// DefaultRestrictedRules returns the default restricted SQL rule names
func DefaultRestrictedRules() []string {
	return []string{"time_to_live", "alter_table_attributes", "import_with_external_id"}
}

// BuildConfig assembles the SEM document from the four sheets and the overrides
func BuildConfig(variables, privileges, tables, sql []Row, overrides Overrides) Config {
	tidbVersion := DefaultTiDBVersion
	if overrides.TiDBVersion != nil {
		tidbVersion = *overrides.TiDBVersion
	}

	return Config{
		Version:                   ConfigVersion,
		TiDBVersion:               tidbVersion,
		RestrictedDatabases:       orDefault(overrides.RestrictedDatabases, DefaultRestrictedDatabases),
		RestrictedTables:          RestrictedTables(tables),
		RestrictedStatusVariables: orDefault(overrides.RestrictedStatusVariables, DefaultRestrictedStatusVariables),
		RestrictedVariables:       RestrictedVariables(variables),
		RestrictedPrivileges:      RestrictedPrivileges(privileges),
		RestrictedSQL: RestrictedSQL{
			Rule: orDefault(overrides.RestrictedRules, DefaultRestrictedRules),
			SQL:  RestrictedSQLStatements(sql),
		},
	}
}

// BuildConfigFromSheets is BuildConfig over a Sheets bundle
func BuildConfigFromSheets(sheets Sheets, overrides Overrides) Config {
	return BuildConfig(sheets.Variables, sheets.Privileges, sheets.Tables, sheets.SQL, overrides)
}

func orDefault(override []string, def func() []string) []string {
	if override != nil {
		out := make([]string, len(override))
		copy(out, override)
		return out
	}
	return def()
}
