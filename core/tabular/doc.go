// Package tabular reads and writes the hand-edited product table used as the
// spreadsheet-style catalog source.
//
// The format is a comma separated text file with a header row. Fields may be
// wrapped in double quotes to embed commas, line breaks or quotes (doubled to
// escape). Rows end at a line break outside quotes; both LF and CRLF are accepted.
//
// # Parsing Rules
//
//   - Unquoted values are trimmed; quoted values are kept exactly as written.
//   - A quote only opens a quoted span at the start of a field.
//   - Rows shorter than the header map the missing columns to "".
//   - Entirely blank rows are skipped.
//   - Input without a header and at least one data row yields no records.
//
// # Usage
//
//	records := tabular.Parse(text)
//	for _, rec := range records {
//	    fmt.Println(rec["id"], rec["title"])
//	}
package tabular
