// Package tabular turns an uploaded byte stream or pasted delimited text into
// an ordered sequence of header-keyed rows. It tolerates comma, tab, and
// semicolon delimiters and quoted fields containing the delimiter; malformed
// or empty input degrades to zero rows rather than an error, the caller
// decides whether "no rows" is a problem
package tabular

import (
	"strconv"
	"strings"
)

// Row is one parsed data line. Headers preserves source column order;
// Fields maps header name to the raw trimmed value
type Row struct {
	Headers []string
	Fields  map[string]string
}

// Get returns the raw value for header h, or "" when the column is absent
func (r Row) Get(h string) string { return r.Fields[h] }

// Sniff picks the record delimiter for one input: tab wins over semicolon,
// semicolon wins over comma, comma is the default. An input never mixes
// delimiters, so the first non-blank line decides for the whole block
func Sniff(line string) rune {
	switch {
	case strings.ContainsRune(line, '\t'):
		return '\t'
	case strings.ContainsRune(line, ';'):
		return ';'
	default:
		return ','
	}
}

// SplitLine splits line on delim, honoring double-quoted spans. A delimiter
// inside an open quote is not a split point and a doubled quote inside a
// quoted span is an escaped literal quote. Each resulting field is trimmed
// and one layer of surrounding double or single quotes is stripped
func SplitLine(line string, delim rune) []string {
	var fields []string
	var b strings.Builder
	inQuote := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if inQuote && i+1 < len(runes) && runes[i+1] == '"' {
				b.WriteRune('"')
				i++
				continue
			}
			inQuote = !inQuote
			b.WriteRune(r)
		case r == delim && !inQuote:
			fields = append(fields, cleanField(b.String()))
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, cleanField(b.String()))
	return fields
}

// cleanField trims whitespace and strips a single layer of matching
// surrounding quotes
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = s[1 : len(s)-1]
		}
	}
	return s
}

// Parse converts a pasted block into rows. The first non-blank line is
// treated as a header row when its first cell, lowercased, contains "first"
// or "name"; otherwise synthetic positional headers are generated and every
// line is data. Blank lines are skipped and do not count as rows
func Parse(input string) []Row {
	lines := splitLines(input)
	if len(lines) == 0 {
		return nil
	}

	delim := Sniff(lines[0])
	first := SplitLine(lines[0], delim)

	var headers []string
	data := lines
	if isHeaderLine(first) {
		headers = first
		data = lines[1:]
	} else {
		headers = syntheticHeaders(len(first))
	}

	rows := make([]Row, 0, len(data))
	for _, line := range data {
		cells := SplitLine(line, delim)
		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				fields[h] = cells[i]
			}
		}
		rows = append(rows, Row{Headers: headers, Fields: fields})
	}
	return rows
}

// ParseBytes parses an uploaded file body
func ParseBytes(b []byte) []Row { return Parse(string(b)) }

// isHeaderLine applies the header heuristic to an already split first line
func isHeaderLine(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	c := strings.ToLower(cells[0])
	return strings.Contains(c, "first") || strings.Contains(c, "name")
}

// syntheticHeaders names columns col1..colN for headerless inputs
func syntheticHeaders(n int) []string {
	hs := make([]string, n)
	for i := range hs {
		hs[i] = "col" + strconv.Itoa(i+1)
	}
	return hs
}

// splitLines normalizes line endings and drops blank lines
func splitLines(input string) []string {
	raw := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
