// Package sniffer detects the shape of a delimited bank export: which
// delimiter it uses and where the real header row is. Exports routinely
// prepend summary lines, so the header is not always line zero.
package sniffer

import (
	"encoding/csv"
	"strings"
)

// DefaultScanLines bounds how deep we look for a header. Real headers are
// never buried deeper in observed exports.
const DefaultScanLines = 15

// minHeaderScore is the minimum plausibility score a candidate line must
// reach before we trust it as a header.
const minHeaderScore = 4

// candidateDelimiters in preference order for ties.
var candidateDelimiters = []rune{',', ';', '\t', '|'}

// roleKeywords are header names that match a semantic column role. Substring
// matching also covers the multi-word variants banks use ("posted date",
// "transaction date", "value date").
var roleKeywords = []string{
	"date", "amount", "payee", "description", "memo", "details",
	"narrative", "debit", "credit", "category", "notes", "balance", "type",
}

// Detection is the selected (delimiter, header line) pair plus the material
// downstream stages need: the tokenized header and the cleaned line set.
type Detection struct {
	Delimiter  rune
	HeaderLine int
	Header     []string
	Lines      []string
	Score      int
	Fallback   bool
}

// Detect scans the first scanLines non-empty lines of text and selects the
// best-scoring (line, delimiter) pair. It never fails: when no candidate
// reaches the minimum score it falls back to line 0 with a comma delimiter,
// and downstream validation rejects rows that don't parse.
func Detect(text string, scanLines int) *Detection {
	if scanLines <= 0 {
		scanLines = DefaultScanLines
	}

	lines := cleanLines(text)
	if len(lines) == 0 {
		return &Detection{Delimiter: ',', Lines: lines, Fallback: true}
	}

	best := &Detection{HeaderLine: -1}
	limit := scanLines
	if limit > len(lines) {
		limit = len(lines)
	}

	for i := 0; i < limit; i++ {
		delimiter, fields := splitWidest(lines[i])
		score := scoreHeader(fields)
		if score > best.Score {
			best = &Detection{
				Delimiter:  delimiter,
				HeaderLine: i,
				Header:     fields,
				Score:      score,
			}
		}
	}

	if best.Score < minHeaderScore {
		header, err := SplitLine(lines[0], ',')
		if err != nil {
			header = strings.Split(lines[0], ",")
		}
		best = &Detection{
			Delimiter:  ',',
			HeaderLine: 0,
			Header:     trimAll(header),
			Fallback:   true,
		}
	}

	best.Lines = lines
	return best
}

// SplitLine tokenizes a single line with the given delimiter, honoring CSV
// quoting. Falls back to a plain split when quoting is malformed.
func SplitLine(line string, delimiter rune) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	fields, err := reader.Read()
	if err != nil {
		return strings.Split(line, string(delimiter)), err
	}
	return fields, nil
}

// cleanLines strips the BOM and returns the non-empty lines of the text.
func cleanLines(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitWidest tries every candidate delimiter and keeps the one producing
// the most fields for this line.
func splitWidest(line string) (rune, []string) {
	bestDelimiter := candidateDelimiters[0]
	var bestFields []string
	for _, d := range candidateDelimiters {
		fields, _ := SplitLine(line, d)
		if len(fields) > len(bestFields) {
			bestFields = fields
			bestDelimiter = d
		}
	}
	return bestDelimiter, trimAll(bestFields)
}

// scoreHeader rates a candidate split. Exact role keywords score higher than
// substring matches, and every non-numeric field adds a bonus since headers
// rarely contain bare numbers.
func scoreHeader(fields []string) int {
	score := 0
	for _, field := range fields {
		f := strings.ToLower(strings.TrimSpace(field))
		if f == "" {
			continue
		}
		score += keywordScore(f)
		if !isNumeric(f) {
			score++
		}
	}
	return score
}

func keywordScore(field string) int {
	for _, kw := range roleKeywords {
		if field == kw {
			return 3
		}
	}
	for _, kw := range roleKeywords {
		if strings.Contains(field, kw) {
			return 2
		}
	}
	return 0
}

// isNumeric reports whether the field looks like a bare number or date-like
// numeric token rather than a word.
func isNumeric(field string) bool {
	seenDigit := false
	for _, r := range field {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == '.' || r == ',' || r == '-' || r == '/' || r == '(' || r == ')' || r == '+' || r == ' ':
			// separators and signs common in numeric and date tokens
		default:
			return false
		}
	}
	return seenDigit
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
