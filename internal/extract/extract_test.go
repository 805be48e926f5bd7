package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_PlainText(t *testing.T) {
	assert.Equal(t, "hello world", Parse("resume.txt", []byte("hello world")))
}

func TestParse_UnknownExtensionBestEffort(t *testing.T) {
	// Unknown extensions fall back to text decoding instead of erroring.
	assert.Equal(t, "raw bytes", Parse("resume.xyz", []byte("raw bytes")))
}

func TestParse_DocBestEffort(t *testing.T) {
	assert.Equal(t, "legacy content", Parse("resume.doc", []byte("legacy content")))
}

func TestParse_CorruptPDFReturnsDescriptiveString(t *testing.T) {
	out := Parse("resume.pdf", []byte("not a pdf"))
	assert.True(t, strings.HasPrefix(out, "failed to parse PDF file:"), out)
}

func TestParse_CorruptDOCXReturnsDescriptiveString(t *testing.T) {
	out := Parse("resume.docx", []byte("not a zip archive"))
	assert.True(t, strings.HasPrefix(out, "failed to parse DOCX file:"), out)
}

func TestDecodeText_UTF8Passthrough(t *testing.T) {
	assert.Equal(t, "简历内容", decodeText([]byte("简历内容")))
}

func TestDecodeText_GBKFallback(t *testing.T) {
	// "你好" encoded as GBK, invalid as UTF-8.
	gbk := []byte{0xc4, 0xe3, 0xba, 0xc3}
	assert.Equal(t, "你好", decodeText(gbk))
}

func TestDecodeText_NeverFails(t *testing.T) {
	out := decodeText([]byte{0xff, 0xfe, 0x00, 0x41})
	assert.NotEmpty(t, out)
}

func TestStripDocxTags(t *testing.T) {
	content := `<w:p><w:r><w:t>First &amp; foremost</w:t></w:r></w:p><w:p><w:r><w:t>Second line</w:t></w:r></w:p>`
	assert.Equal(t, "First & foremost\nSecond line", stripDocxTags(content))
}

func TestClean(t *testing.T) {
	assert.Equal(t, "a b c", Clean("  a\t\tb\n\nc  "))
}

func TestClean_StripsControlCharacters(t *testing.T) {
	assert.Equal(t, "ab", Clean("a\x00\x08b"))
}

func TestClean_ControlCharacterBetweenSpaces(t *testing.T) {
	// The surrounding spaces must collapse into one in a single pass.
	assert.Equal(t, "a b", Clean("a \x00 b"))
}

func TestClean_Idempotent(t *testing.T) {
	once := Clean("  messy \x0b input\n with   runs ")
	assert.Equal(t, once, Clean(once))
}
