package pdftext

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/trade-invoice-csv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "unix", text: "a\nb\n", want: []string{"a", "b"}},
		{name: "windows", text: "a\r\nb", want: []string{"a", "b"}},
		{name: "old mac", text: "a\rb", want: []string{"a", "b"}},
		{name: "blank lines kept", text: "a\n\n  b  ", want: []string{"a", "", "  b  "}},
		{name: "empty", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.text))
		})
	}
}

func TestSplitPages_PreservesPageOrder(t *testing.T) {
	out := "page one a\npage one b\n\fpage two a\n\f"
	assert.Equal(t, []string{"page one a", "page one b", "page two a"}, splitPages(out))
}

func TestStaticSource(t *testing.T) {
	src := NewStaticSource("one", "two")

	lines, err := src.Lines("ignored.pdf")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)

	lines[0] = "changed"
	again, _ := src.Lines("ignored.pdf")
	assert.Equal(t, "one", again[0])

	src.Err = errors.New("boom")
	_, err = src.Lines("ignored.pdf")
	assert.EqualError(t, err, "boom")
}

func TestNativeSource_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.pdf")
	require.NoError(t, os.WriteFile(corrupt, []byte("this is not a pdf"), 0600))

	for _, path := range []string{corrupt, filepath.Join(dir, "missing.pdf")} {
		_, err := NewNativeSource().Lines(path)
		var extractErr *parsererror.ExtractionError
		require.True(t, errors.As(err, &extractErr), "got %v", err)
		assert.Equal(t, path, extractErr.FilePath)
	}
}

func TestPdftotextSource_MissingBinary(t *testing.T) {
	src := &PdftotextSource{Binary: filepath.Join(t.TempDir(), "no-such-pdftotext")}

	_, err := src.Lines("invoice.pdf")
	var extractErr *parsererror.ExtractionError
	require.True(t, errors.As(err, &extractErr))
	assert.Contains(t, err.Error(), "no-such-pdftotext")
}

func TestGroupRows(t *testing.T) {
	runs := []textRun{
		{x: 300, y: 680.4, text: "4.99"},
		{x: 50, y: 700, text: "Heading"},
		{x: 50, y: 679.2, text: "12345"},
		{x: 120, y: 680, text: "  Hammer  "},
		{x: 80, y: 500, text: "   "},
	}
	assert.Equal(t, []string{"Heading", "12345 Hammer 4.99"}, groupRows(runs))
	assert.Nil(t, groupRows(nil))
}

func TestMatrixMul(t *testing.T) {
	scaled := matrix{2, 0, 0, 2, 0, 0}
	m := translate(10, 20).mul(scaled)
	assert.Equal(t, matrix{2, 0, 0, 2, 20, 40}, m)
	assert.Equal(t, m, m.mul(identity))
}
