package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func captureStderr(f func()) string {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	f()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestSuccess(t *testing.T) {
	output := captureStdout(func() {
		Success("Decoded %d records", 5)
	})

	assert.Contains(t, output, "✓")
	assert.Contains(t, output, "Decoded 5 records")
}

func TestError(t *testing.T) {
	output := captureStderr(func() {
		Error("Failed to read %s", "input.jsonl")
	})

	assert.Contains(t, output, "✗")
	assert.Contains(t, output, "Failed to read input.jsonl")
}

func TestInfoAndWarn(t *testing.T) {
	output := captureStdout(func() {
		Info("plain %s", "info")
		Warn("%d fields failed", 2)
	})

	assert.Contains(t, output, "plain info")
	assert.Contains(t, output, "⚠ 2 fields failed")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, map[string][]string{"failures": {"items"}}))
	assert.Equal(t, "failures:\n  - items\n", buf.String())
}

func TestStructured(t *testing.T) {
	var buf bytes.Buffer

	handled, err := Structured(&buf, FormatTable, 1)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Empty(t, buf.String())

	handled, err = Structured(&buf, FormatJSON, 1)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, "1\n", buf.String())
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{FormatTable, FormatJSON, FormatYAML} {
		assert.NoError(t, ValidateFormat(f))
	}
	assert.Error(t, ValidateFormat("xml"))
}

func TestTable_Render_ColumnAlignment(t *testing.T) {
	table := NewTable([]string{"NAME", "VALUE"})
	table.AddRow([]string{"arch", "0xc000003e"})
	table.AddRow([]string{"syscall", "59"})

	var buf bytes.Buffer
	table.Render(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME     VALUE       ", lines[0])
	assert.Equal(t, "-------  ----------  ", lines[1])
	assert.Equal(t, "arch     0xc000003e  ", lines[2])
	assert.Equal(t, "syscall  59          ", lines[3])
}

func TestTable_Render_IgnoresColourCodes(t *testing.T) {
	table := NewTable([]string{"V"})
	table.AddRow([]string{"\x1b[31mred\x1b[0m"})
	table.AddRow([]string{"abcd"})

	var buf bytes.Buffer
	table.Render(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "\x1b[31mred\x1b[0m   ", lines[2])
	assert.Equal(t, "abcd  ", lines[3])
}

func TestVisibleLen(t *testing.T) {
	assert.Equal(t, 3, visibleLen("abc"))
	assert.Equal(t, 3, visibleLen("\x1b[1;31mabc\x1b[0m"))
	assert.Equal(t, 0, visibleLen(""))
}
