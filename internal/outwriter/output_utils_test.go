package outwriter

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"wins": 7})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"wins\": 7\n}\n", buf.String())
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"team", "score"}, func(w *csv.Writer) error {
		return w.Write([]string{"Mets", "55.5"})
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "team,score", lines[0])
	assert.Equal(t, "Mets,55.5", lines[1])
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)
	assert.Equal(t, "3.85", fmtFloat(3.847))
	assert.Equal(t, "%d", intFmt)

	fmtFloat, _ = createFormatters(1)
	assert.Equal(t, "3.8", fmtFloat(3.847))
}

func TestFormatJoined(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	v := 4.05
	assert.Equal(t, "4.1", formatJoined(&v, fmtFloat))
	assert.Equal(t, "-", formatJoined(nil, fmtFloat))
}

func TestWriteWithFile_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	err := writeWithFile(path, func(w io.Writer) error {
		_, err := w.Write([]byte("payload"))
		return err
	}, "Wrote data")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}
