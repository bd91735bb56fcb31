package importer

import "strings"

// SplitLines splits raw CSV text into non-empty lines. CRLF and LF endings
// are both accepted; lines that are blank after trimming are dropped.
func SplitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// TokenizeLine splits one CSV line into fields. A double quote toggles
// quoted state; "" inside quotes emits one literal quote; commas outside
// quotes end the field. Fields are trimmed of surrounding whitespace.
//
// Bank exports quote inconsistently and leave ragged rows, so this scanner
// is deliberately lenient where encoding/csv would error out.
func TokenizeLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))

	return fields
}
