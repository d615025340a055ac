package tabular

import (
	"fmt"
	"io"
	"strings"
)

// EscapeField quotes v when it would not survive a parse unquoted.
func (p *Parser) EscapeField(v string) string {
	if v == "" {
		return ""
	}
	needsQuotes := strings.ContainsRune(v, p.Delimiter) ||
		strings.ContainsRune(v, p.Quote) ||
		strings.ContainsAny(v, "\r\n") ||
		strings.TrimSpace(v) != v
	if !needsQuotes {
		return v
	}
	q := string(p.Quote)
	return q + strings.ReplaceAll(v, q, q+q) + q
}

// Format renders a header row followed by data rows, one per line.
func (p *Parser) Format(headers []string, rows [][]string) string {
	var b strings.Builder
	p.writeRow(&b, headers)
	for _, row := range rows {
		b.WriteByte('\n')
		p.writeRow(&b, row)
	}
	return b.String()
}

// Write renders the table to w with the default dialect.
func Write(w io.Writer, headers []string, rows [][]string) error {
	if _, err := io.WriteString(w, NewParser().Format(headers, rows)); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

func (p *Parser) writeRow(b *strings.Builder, row []string) {
	for i, v := range row {
		if i > 0 {
			b.WriteRune(p.Delimiter)
		}
		b.WriteString(p.EscapeField(v))
	}
}
