package sem

import "strings"

// Sheet column names and trigger values
const (
	FieldName          = "Name"
	FieldAccessPremium = "Access (Premium)"
	FieldPremium       = "Premium"
	FieldPrivilege     = "Privilege"
	FieldSchema        = "Schema"
	FieldTableName     = "Table name"
	FieldSQL           = "SQL"

	AccessInvisible = "Invisible"
	AccessReadOnly  = "Read-only"
	PremiumNo       = "NO"

	hostnameVariable = "hostname"
	hostnameValue    = "localhost"
)

// RestrictedVariables keeps the variables that are invisible or read-only on Premium
func RestrictedVariables(rows []Row) []RestrictedVariable {
	out := make([]RestrictedVariable, 0, len(rows))
	for _, row := range rows {
		var hidden bool
		switch row.Get(FieldAccessPremium) {
		case AccessInvisible:
			hidden = true
		case AccessReadOnly:
			hidden = false
		default:
			continue
		}

		v := RestrictedVariable{Name: row.Get(FieldName), Hidden: hidden}
		if v.Name == hostnameVariable {
			v.Value = hostnameValue
		}
		out = append(out, v)
	}
	return out
}

// RestrictedPrivileges returns the privileges unavailable on Premium
func RestrictedPrivileges(rows []Row) []string {
	return selectUnavailable(rows, FieldPrivilege)
}

// RestrictedTables returns the system tables unavailable on Premium, lowercased
func RestrictedTables(rows []Row) []RestrictedTable {
	out := make([]RestrictedTable, 0, len(rows))
	for _, row := range rows {
		if row.Get(FieldPremium) != PremiumNo {
			continue
		}
		out = append(out, RestrictedTable{
			Schema: strings.ToLower(row.Get(FieldSchema)),
			Name:   strings.ToLower(row.Get(FieldTableName)),
			Hidden: true,
		})
	}
	return out
}

// RestrictedSQLStatements returns the raw SQL text of statements unavailable on Premium
func RestrictedSQLStatements(rows []Row) []string {
	return selectUnavailable(rows, FieldSQL)
}

func selectUnavailable(rows []Row, field string) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Get(FieldPremium) == PremiumNo {
			out = append(out, row.Get(field))
		}
	}
	return out
}
