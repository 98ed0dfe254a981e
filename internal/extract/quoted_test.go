package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/hanscan/internal/extract"
	"github.com/farcloser/hanscan/internal/types"
)

func TestQuotedMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "double quoted literal",
			line: `const msg = "안녕하세요 사용자님"`,
			want: "안녕하세요 사용자님",
		},
		{
			name: "span runs from first to last quote",
			line: `t("첫째", '둘째')`,
			want: "첫째 둘째",
		},
		{
			name: "template literal with nested quotes",
			line: "const s = `안녕 ${'세계'}`",
			want: "안녕 세계",
		},
		{
			name: "punctuation inside the span splits runs",
			line: `alert("저장!완료")`,
			want: "저장 완료",
		},
		{
			name: "falls back to the whole line when the span has no hangul",
			line: `log("error") // 오류 발생`,
			want: "오류발생",
		},
		{
			name: "single quote character is not a span",
			line: `// it's 한글 주석`,
			want: "한글주석",
		},
		{
			name: "no quotes concatenates runs",
			line: `// 이 줄은 주석입니다`,
			want: "이줄은주석입니다",
		},
		{
			name: "empty span",
			line: `x = "" + 값`,
			want: "값",
		},
		{
			name: "no hangul at all",
			line: `const msg = "hello"`,
			want: "",
		},
		{
			name: "jamo are outside the syllable block",
			line: `const msg = "ㅋㅋㅋ"`,
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, extract.QuotedMessage(tc.line))
		})
	}
}

func TestQuotedScan(t *testing.T) {
	t.Parallel()

	content := "import x from 'y'\n\nconst msg = \"안녕하세요 사용자님\"\nconst n = 1\n"

	records := extract.Quoted{}.Scan("/app.ts", content)

	require.Len(t, records, 1)
	assert.Equal(t, types.MatchRecord{Filename: "/app.ts", Line: 3, Message: "안녕하세요 사용자님"}, records[0])
}

func TestQuotedScanOrdersByLine(t *testing.T) {
	t.Parallel()

	content := "a = '하나'\nb = 2\nc = '셋'\r\nd = '넷'"

	records := extract.Quoted{}.Scan("/f.js", content)

	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].Line)
	assert.Equal(t, 3, records[1].Line)
	assert.Equal(t, "셋", records[1].Message)
	assert.Equal(t, 4, records[2].Line)
}

func TestQuotedScanNoMatches(t *testing.T) {
	t.Parallel()

	assert.Empty(t, extract.Quoted{}.Scan("/f.js", "const a = 1\n"))
	assert.Empty(t, extract.Quoted{}.Scan("/f.js", ""))
}

func TestContainsHangul(t *testing.T) {
	t.Parallel()

	assert.True(t, extract.ContainsHangul("가"))
	assert.True(t, extract.ContainsHangul("abc 힣"))
	assert.False(t, extract.ContainsHangul("ㄱㄴㄷ"))
	assert.False(t, extract.ContainsHangul("日本語"))
	assert.False(t, extract.ContainsHangul(""))
}
