package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/spf13/afero"

	"github.com/connerohnesorge/wikitext/internal/dump"
)

// captureOutput captures stdout during function execution.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	return buf.String()
}

// useMemFs installs an in-memory filesystem for the duration of a test.
func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	old := fileSystem
	memFs := afero.NewMemMapFs()
	fileSystem = memFs
	t.Cleanup(func() {
		fileSystem = old
	})

	return memFs
}

func TestParseCmdTree(t *testing.T) {
	memFs := useMemFs(t)
	err := afero.WriteFile(
		memFs,
		"page.wiki",
		[]byte("====hi====\n"),
		0o644,
	)
	assert.NoError(t, err)

	command := &ParseCmd{File: "page.wiki"}
	output := captureOutput(func() {
		assert.NoError(t, command.Run())
	})
	assert.True(t, strings.Contains(output, "Heading"))
}

func TestParseCmdJSON(t *testing.T) {
	memFs := useMemFs(t)
	err := afero.WriteFile(
		memFs,
		"page.wiki",
		[]byte("{{t|a=1}}"),
		0o644,
	)
	assert.NoError(t, err)

	command := &ParseCmd{File: "page.wiki", JSON: true}
	output := captureOutput(func() {
		assert.NoError(t, command.Run())
	})

	var document dump.Document
	assert.NoError(t, json.Unmarshal([]byte(output), &document))
	assert.Equal(t, 1, len(document.Nodes))
	assert.Equal(t, "Template", document.Nodes[0].Type)
}

func TestParseCmdWarningsOnly(t *testing.T) {
	memFs := useMemFs(t)
	err := afero.WriteFile(
		memFs,
		"page.wiki",
		[]byte("{{a"),
		0o644,
	)
	assert.NoError(t, err)

	command := &ParseCmd{File: "page.wiki", WarningsOnly: true}
	output := captureOutput(func() {
		assert.NoError(t, command.Run())
	})
	assert.True(t, strings.Contains(output, "MissingEndTagRewinding"))
	assert.False(t, strings.Contains(output, "Template"))
}

func TestParseCmdStdin(t *testing.T) {
	oldStdin := stdin
	stdin = strings.NewReader("[[Example]]s")
	t.Cleanup(func() {
		stdin = oldStdin
	})

	command := &ParseCmd{File: "-"}
	output := captureOutput(func() {
		assert.NoError(t, command.Run())
	})
	assert.True(t, strings.Contains(output, "Link"))
}

func TestParseCmdMissingFile(t *testing.T) {
	useMemFs(t)

	command := &ParseCmd{File: "missing.wiki"}
	assert.Error(t, command.Run())
}
