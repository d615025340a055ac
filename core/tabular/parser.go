package tabular

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Record maps a header name to the field value of one data row.
type Record map[string]string

// Parser holds the reserved characters of the format.
type Parser struct {
	// Delimiter separates fields outside quotes.
	Delimiter rune
	// Quote opens and closes a quoted span at the start of a field.
	Quote rune
}

// NewParser returns a parser for the comma/double-quote dialect.
func NewParser() *Parser {
	return &Parser{Delimiter: ',', Quote: '"'}
}

// Parse parses text with the default dialect.
func Parse(text string) []Record {
	return NewParser().Parse(text)
}

// ParseReader reads everything from r and parses it with the default dialect.
func ParseReader(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	return Parse(string(data)), nil
}

// Parse converts text into records keyed by the header row.
// It never fails: malformed input degrades to literal field content.
func (p *Parser) Parse(text string) []Record {
	text = strings.TrimPrefix(text, "\ufeff")

	var rows [][]string
	for _, row := range p.scan(text) {
		if row.blank() {
			continue
		}
		rows = append(rows, row.fields)
	}

	if len(rows) < 2 {
		return []Record{}
	}

	headers := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}

	return records
}

// Rows splits text into raw rows of field values, including blank rows.
func (p *Parser) Rows(text string) [][]string {
	scanned := p.scan(text)
	rows := make([][]string, len(scanned))
	for i, r := range scanned {
		rows[i] = r.fields
	}
	return rows
}

type rawRow struct {
	fields []string
	// quoted is set when any field of the row was quoted.
	quoted bool
}

// blank reports a row with no quoted field and only empty unquoted fields.
func (r rawRow) blank() bool {
	if r.quoted {
		return false
	}
	for _, v := range r.fields {
		if v != "" {
			return false
		}
	}
	return true
}

// scan walks text one rune at a time. Bytes that are not valid UTF-8 are
// copied through unchanged.
func (p *Parser) scan(text string) []rawRow {
	var (
		rows     []rawRow
		row      rawRow
		field    strings.Builder
		quoted   bool // current field started with a quote
		inQuotes bool
		pending  bool // current row has consumed input
	)

	endField := func() {
		v := field.String()
		if quoted {
			row.quoted = true
		} else {
			v = strings.TrimSpace(v)
		}
		row.fields = append(row.fields, v)
		field.Reset()
		quoted = false
	}
	endRow := func() {
		endField()
		rows = append(rows, row)
		row = rawRow{}
		pending = false
	}
	next := func(i int) rune {
		if i >= len(text) {
			return -1
		}
		c, _ := utf8.DecodeRuneInString(text[i:])
		return c
	}

	for i := 0; i < len(text); {
		c, size := utf8.DecodeRuneInString(text[i:])
		raw := text[i : i+size]
		i += size
		if c == utf8.RuneError && size == 1 {
			c = -1
		}

		if inQuotes {
			if c == p.Quote {
				if next(i) == p.Quote {
					field.WriteString(raw)
					i += utf8.RuneLen(p.Quote)
				} else {
					inQuotes = false
				}
				continue
			}
			field.WriteString(raw)
			continue
		}

		switch {
		case c == p.Delimiter:
			endField()
			pending = true
		case c == '\n':
			endRow()
		case c == '\r':
			if next(i) == '\n' {
				i++
			}
			endRow()
		case c == p.Quote && !quoted && strings.TrimSpace(field.String()) == "":
			field.Reset()
			inQuotes = true
			quoted = true
			pending = true
		case quoted && unicode.IsSpace(c):
			// whitespace after a closing quote
		default:
			field.WriteString(raw)
			pending = true
		}
	}

	if pending || field.Len() > 0 || len(row.fields) > 0 {
		endRow()
	}

	return rows
}
