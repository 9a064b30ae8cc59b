// Package importer turns raw bulk-import input (delimited text or a JSON
// array) into validated word/meaning/example triples. Row-level problems are
// collected, not fatal: callers always get the valid subset alongside the
// error list. Only structurally broken JSON discards the whole batch.
package importer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Entry is one parsed vocabulary triple. Example is empty when absent.
type Entry struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Example string `json:"example,omitempty"`
}

// ParseResult is the outcome of parsing one batch.
type ParseResult struct {
	Entries []Entry  `json:"entries"`
	Errors  []string `json:"errors"`
}

// DefaultDelimiter is used when the caller does not specify one.
const DefaultDelimiter = ','

// ParseDelimited parses multi-line delimited text. Every non-blank line is a
// candidate record; blank lines still count toward line numbers but produce
// neither an entry nor an error. A quoted field may embed the delimiter; the
// quote characters themselves are stripped.
func ParseDelimited(text string, delimiter rune) *ParseResult {
	res := &ParseResult{Entries: []Entry{}, Errors: []string{}}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lineNo := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitFields(line, delimiter)
		if len(fields) < 2 {
			res.Errors = append(res.Errors, fmt.Sprintf("Line %d: Must have at least word and meaning", lineNo))
			continue
		}

		word := strings.TrimSpace(fields[0])
		meaning := strings.TrimSpace(fields[1])
		if word == "" || meaning == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("Line %d: Word and meaning cannot be empty", lineNo))
			continue
		}

		entry := Entry{Word: word, Meaning: meaning}
		if len(fields) > 2 {
			entry.Example = strings.TrimSpace(fields[2])
		}
		res.Entries = append(res.Entries, entry)
	}

	return res
}

// splitFields splits one line on delimiter. Each unescaped quote character
// toggles quoting; delimiters inside quotes are literal and the quotes are
// not part of the field value.
func splitFields(line string, delimiter rune) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delimiter && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// ParseJSON parses a JSON array of vocabulary objects. Malformed JSON or a
// non-array document fails the whole batch with a single error; individual
// items missing word or meaning are skipped with an indexed error. Present
// fields are coerced to text.
func ParseJSON(data []byte) *ParseResult {
	res := &ParseResult{Entries: []Entry{}, Errors: []string{}}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, "Invalid JSON format")
		return res
	}

	items, ok := doc.([]interface{})
	if !ok {
		res.Errors = append(res.Errors, "JSON must be an array of vocabulary objects")
		return res
	}

	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("Item %d: Must have word and meaning properties", i+1))
			continue
		}

		word := coerceString(obj["word"])
		meaning := coerceString(obj["meaning"])
		if word == "" || meaning == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("Item %d: Must have word and meaning properties", i+1))
			continue
		}

		res.Entries = append(res.Entries, Entry{
			Word:    word,
			Meaning: meaning,
			Example: coerceString(obj["example"]),
		})
	}

	return res
}

func coerceString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
