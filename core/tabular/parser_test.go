package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Record
	}{
		{
			name: "Simple",
			text: "id,title\nlamp,Lamp\nchair,Chair\n",
			want: []Record{
				{"id": "lamp", "title": "Lamp"},
				{"id": "chair", "title": "Chair"},
			},
		},
		{
			name: "TrailingRowWithoutNewline",
			text: "id,title\nlamp,Lamp",
			want: []Record{{"id": "lamp", "title": "Lamp"}},
		},
		{
			name: "CRLF",
			text: "id,title\r\nlamp,Lamp\r\nchair,Chair\r\n",
			want: []Record{
				{"id": "lamp", "title": "Lamp"},
				{"id": "chair", "title": "Chair"},
			},
		},
		{
			name: "QuotedDelimiterAndNewline",
			text: "id,description\nlamp,\"Warm, soft\nlight\"\n",
			want: []Record{{"id": "lamp", "description": "Warm, soft\nlight"}},
		},
		{
			name: "EscapedQuote",
			text: "id,title\nlamp,\"The \"\"Best\"\" Lamp\"\n",
			want: []Record{{"id": "lamp", "title": "The \"Best\" Lamp"}},
		},
		{
			name: "UnquotedTrimmedQuotedKept",
			text: "id,title\n  lamp  ,\"  Lamp  \"\n",
			want: []Record{{"id": "lamp", "title": "  Lamp  "}},
		},
		{
			name: "ShortRowPadded",
			text: "id,title,category\nlamp\n",
			want: []Record{{"id": "lamp", "title": "", "category": ""}},
		},
		{
			name: "BlankRowsSkipped",
			text: "id,title\n\nlamp,Lamp\n   \n,\nchair,Chair\n",
			want: []Record{
				{"id": "lamp", "title": "Lamp"},
				{"id": "chair", "title": "Chair"},
			},
		},
		{
			name: "MidFieldQuoteIsLiteral",
			text: "id,title\nlamp,12\" Lamp\n",
			want: []Record{{"id": "lamp", "title": "12\" Lamp"}},
		},
		{
			name: "ByteOrderMark",
			text: "\ufeffid,title\nlamp,Lamp\n",
			want: []Record{{"id": "lamp", "title": "Lamp"}},
		},
		{
			name: "QuotedWhitespaceRowKept",
			text: "id,title\n\" \",\"  \"\nlamp,Lamp\n",
			want: []Record{
				{"id": " ", "title": "  "},
				{"id": "lamp", "title": "Lamp"},
			},
		},
		{
			name: "QuotedEmptyRowKept",
			text: "id,title\n\"\",\n",
			want: []Record{{"id": "", "title": ""}},
		},
		{
			name: "InvalidUTF8Preserved",
			text: "id,thumbnail\nlamp,caf\xe9.jpg\n",
			want: []Record{{"id": "lamp", "thumbnail": "caf\xe9.jpg"}},
		},
		{
			name: "InvalidUTF8InsideQuotes",
			text: "id,title\nlamp,\"Caf\xe9, \"\"Noir\"\"\"\n",
			want: []Record{{"id": "lamp", "title": "Caf\xe9, \"Noir\""}},
		},
		{
			name: "MultiByteText",
			text: "id,title\nlamp,Lámpara ñandú\n",
			want: []Record{{"id": "lamp", "title": "Lámpara ñandú"}},
		},
		{
			name: "HeaderOnly",
			text: "id,title\n",
			want: []Record{},
		},
		{
			name: "Empty",
			text: "",
			want: []Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestParseReader(t *testing.T) {
	records, err := ParseReader(strings.NewReader("id,title\nlamp,Lamp"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Lamp", records[0]["title"])
}

func TestRows_UnterminatedQuote(t *testing.T) {
	rows := NewParser().Rows("a,\"b,c\nd")
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"a", "b,c\nd"}, rows[0])
}

func TestRoundTrip(t *testing.T) {
	headers := []string{"id", "title", "description"}
	rows := [][]string{
		{"lamp", "Lamp, \"Desk\" edition", "line one\nline two"},
		{"chair", "  padded  ", "crlf\r\ninside"},
		{"table", "", "plain"},
		{"stool", "\"\"", ",,,"},
		{" ", "  ", "\t"},
		{"caf\xe9", "bytes \xff\xfe", "plain"},
	}

	text := NewParser().Format(headers, rows)
	records := Parse(text)

	require.Len(t, records, len(rows))
	for i, row := range rows {
		for j, h := range headers {
			assert.Equal(t, row[j], records[i][h], "row %d column %s", i, h)
		}
	}
}

func TestEscapeField(t *testing.T) {
	p := NewParser()
	assert.Equal(t, "", p.EscapeField(""))
	assert.Equal(t, "plain", p.EscapeField("plain"))
	assert.Equal(t, `"a,b"`, p.EscapeField("a,b"))
	assert.Equal(t, `"say ""hi"""`, p.EscapeField(`say "hi"`))
	assert.Equal(t, "\"a\nb\"", p.EscapeField("a\nb"))
	assert.Equal(t, `" x"`, p.EscapeField(" x"))
}

func TestWrite(t *testing.T) {
	var b strings.Builder
	err := Write(&b, []string{"id", "title"}, [][]string{{"lamp", "A, B"}})
	require.NoError(t, err)
	assert.Equal(t, "id,title\nlamp,\"A, B\"", b.String())
}
