package csvsheet

import (
	"strings"

	"semgen/domain/sem"
)

// Parse turns the text of one exported rule sheet into rows keyed by the
// header line. Blank lines are skipped. A double quote toggles quoted mode,
// inside which commas do not split; doubled quotes are not unescaped.
func Parse(content string) []sem.Row {
	lines := nonEmptyLines(content)
	if len(lines) == 0 {
		return []sem.Row{}
	}

	headers := parseHeader(lines[0])

	rows := make([]sem.Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := SplitLine(line)
		row := make(sem.Row, len(headers))
		for i, header := range headers {
			if i < len(values) {
				row[header] = values[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Headers returns the field names of the first non-blank line
func Headers(content string) []string {
	lines := nonEmptyLines(content)
	if len(lines) == 0 {
		return nil
	}
	return parseHeader(lines[0])
}

// SplitLine tokenizes a single data line on commas outside quoted spans
func SplitLine(line string) []string {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
	)

	for _, ch := range line {
		switch {
		case ch == '"':
			quoted = !quoted
		case ch == ',' && !quoted:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}

func parseHeader(line string) []string {
	parts := strings.Split(line, ",")
	headers := make([]string, len(parts))
	for i, part := range parts {
		headers[i] = strings.TrimSpace(strings.Trim(strings.TrimSpace(part), `"`))
	}
	return headers
}

func nonEmptyLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
