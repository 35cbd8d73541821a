package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRead_UTF8(t *testing.T) {
	path := writeFile(t, "doc.txt", []byte("first line\nsecond line\n"))

	doc, err := New().Read(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, domain.KindText, doc.Kind)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "first line\nsecond line\n", doc.Text)
	assert.Equal(t, []string{"first line", "second line"}, doc.Lines)
	assert.Equal(t, int64(23), doc.ByteLength)
}

func TestRead_Latin1Fallback(t *testing.T) {
	// 0xE9 is é in Latin-1 but invalid as a standalone UTF-8 byte.
	path := writeFile(t, "doc.txt", []byte{'c', 'a', 'f', 0xE9})

	doc, err := New().Read(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "café", doc.Text)
}

func TestRead_CRLF(t *testing.T) {
	path := writeFile(t, "doc.txt", []byte("one\r\ntwo\r\n"))

	doc, err := New().Read(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two"}, doc.Lines)
}

func TestRead_Empty(t *testing.T) {
	path := writeFile(t, "doc.txt", nil)

	doc, err := New().Read(context.Background(), path)
	require.NoError(t, err)

	assert.Empty(t, doc.Text)
	assert.Nil(t, doc.Lines)
}

func TestRead_MarkdownVerbatim(t *testing.T) {
	path := writeFile(t, "doc.md", []byte("# Heading\n\nSome **bold** text.\n"))

	doc, err := New().Read(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "# Heading\n\nSome **bold** text.\n", doc.Text)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := New().Read(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, []string{".txt", ".md"}, New().Extensions())
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single no newline", "only", []string{"only"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank middle line", "a\n\nb", []string{"a", "", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := splitLines(tc.text); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("splitLines(%q) = %#v, want %#v", tc.text, got, tc.want)
			}
		})
	}
}
