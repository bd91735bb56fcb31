package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"trims whitespace", " a , b ,c ", []string{"a", "b", "c"}},
		{"quoted comma", `a,"b,c",d`, []string{"a", "b,c", "d"}},
		{"escaped quote", `a,"say ""hi""",b`, []string{"a", `say "hi"`, "b"}},
		{"empty fields", "a,,c", []string{"a", "", "c"}},
		{"trailing empty field", "a,b,", []string{"a", "b", ""}},
		{"single field", "only", []string{"only"}},
		{"empty line", "", []string{""}},
		{"quoted empty", `"",x`, []string{"", "x"}},
		{"comma inside nested quotes", `"CHECK #1042, ""VOID""",12.00`, []string{`CHECK #1042, "VOID"`, "12.00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenizeLine(tt.line))
		})
	}
}

// quoteField renders one field the way our own CSV export does.
func quoteField(f string) string {
	return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
}

func TestTokenizeRoundTrip(t *testing.T) {
	fieldLists := [][]string{
		{"2024-01-05", "1042", "Coffee, beans & filters", "0", "4.50"},
		{`He said "no"`, `a,b,"c"`, ""},
		{"plain", "with space inside"},
	}
	for _, fields := range fieldLists {
		quoted := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = quoteField(f)
		}
		line := strings.Join(quoted, ",")
		assert.Equal(t, fields, TokenizeLine(line), "line %q", line)
	}
}

func TestSplitLines(t *testing.T) {
	raw := "header\r\nrow1\n\n   \nrow2\r\n"
	assert.Equal(t, []string{"header", "row1", "row2"}, SplitLines(raw))
}

func TestSplitLinesEmpty(t *testing.T) {
	assert.Empty(t, SplitLines(""))
	assert.Empty(t, SplitLines("\n\r\n  \n"))
}
