package sem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildConfig_Defaults(t *testing.T) {
	cfg := BuildConfig(nil, nil, nil, nil, Overrides{})

	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, "v8.5.0", cfg.TiDBVersion)
	assert.Equal(t, []string{"metrics_schema"}, cfg.RestrictedDatabases)
	assert.Equal(t, []string{"tidb_gc_leader_desc"}, cfg.RestrictedStatusVariables)
	assert.Equal(t, []string{"time_to_live", "alter_table_attributes", "import_with_external_id"}, cfg.RestrictedSQL.Rule)
	assert.Empty(t, cfg.RestrictedTables)
	assert.Empty(t, cfg.RestrictedVariables)
	assert.Empty(t, cfg.RestrictedPrivileges)
	assert.Empty(t, cfg.RestrictedSQL.SQL)
}

func TestBuildConfig_Overrides(t *testing.T) {
	version := "v7.5.1"
	cfg := BuildConfig(nil, nil, nil, nil, Overrides{
		TiDBVersion:               &version,
		RestrictedDatabases:       []string{"foo", "bar"},
		RestrictedStatusVariables: []string{"a"},
		RestrictedRules:           []string{"time_to_live"},
	})

	assert.Equal(t, "v7.5.1", cfg.TiDBVersion)
	assert.Equal(t, []string{"foo", "bar"}, cfg.RestrictedDatabases)
	assert.Equal(t, []string{"a"}, cfg.RestrictedStatusVariables)
	assert.Equal(t, []string{"time_to_live"}, cfg.RestrictedSQL.Rule)
}

func TestBuildConfig_EmptyVersionOverride(t *testing.T) {
	empty := ""
	cfg := BuildConfig(nil, nil, nil, nil, Overrides{TiDBVersion: &empty})
	assert.Equal(t, "", cfg.TiDBVersion)
}

func TestBuildConfig_WiresTransforms(t *testing.T) {
	cfg := BuildConfig(
		[]Row{{"Name": "hostname", "Access (Premium)": "Invisible"}},
		[]Row{{"Privilege": "SUPER", "Premium": "NO"}},
		[]Row{{"Table name": "CLUSTER_INFO", "Schema": "INFORMATION_SCHEMA", "Premium": "NO"}},
		[]Row{{"SQL": "SHUTDOWN", "Premium": "NO"}},
		Overrides{},
	)

	assert.Equal(t, []RestrictedVariable{{Name: "hostname", Hidden: true, Value: "localhost"}}, cfg.RestrictedVariables)
	assert.Equal(t, []string{"SUPER"}, cfg.RestrictedPrivileges)
	assert.Equal(t, []RestrictedTable{{Schema: "information_schema", Name: "cluster_info", Hidden: true}}, cfg.RestrictedTables)
	assert.Equal(t, []string{"SHUTDOWN"}, cfg.RestrictedSQL.SQL)
}

func TestBuildConfig_DefaultsNotShared(t *testing.T) {
	first := BuildConfig(nil, nil, nil, nil, Overrides{})
	first.RestrictedDatabases[0] = "mutated"
	first.RestrictedSQL.Rule[0] = "mutated"

	second := BuildConfig(nil, nil, nil, nil, Overrides{})
	assert.Equal(t, []string{"metrics_schema"}, second.RestrictedDatabases)
	assert.Equal(t, "time_to_live", second.RestrictedSQL.Rule[0])
}

func TestBuildConfig_OverrideCopied(t *testing.T) {
	dbs := []string{"foo"}
	cfg := BuildConfig(nil, nil, nil, nil, Overrides{RestrictedDatabases: dbs})
	dbs[0] = "changed"
	assert.Equal(t, []string{"foo"}, cfg.RestrictedDatabases)
}

func TestBuildConfigFromSheets(t *testing.T) {
	var sheets Sheets
	sheets.Set(SheetPrivileges, []Row{{"Privilege": "SUPER", "Premium": "NO"}})

	cfg := BuildConfigFromSheets(sheets, Overrides{})
	assert.Equal(t, []string{"SUPER"}, cfg.RestrictedPrivileges)
}

func TestSheetKind_FileName(t *testing.T) {
	assert.Equal(t, "TiDB SEM - System Variables.csv", SheetVariables.FileName())
	assert.Equal(t, "TiDB SEM - SQL.csv", SheetSQL.FileName())
}
