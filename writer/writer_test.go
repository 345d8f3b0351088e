package writer_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/mousany/msgwriter/writer"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		message string
	}{
		{name: "simple", message: "hi"},
		{name: "empty", message: ""},
		{name: "spaces", message: "hello there, world"},
		{name: "unicode", message: "héllo wörld ✓"},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "out.txt")
			var stdout bytes.Buffer
			w := &writer.Writer{Stdout: &stdout}

			err := w.Run(tt.message, path)
			require.NoError(t, err)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, "Hello, the message was: "+tt.message+"\n", string(data))
			require.Equal(t,
				"Hello World. We will write this message: "+tt.message+"\n"+
					"Done! try looking into "+path+"\n",
				stdout.String())
		})
	}
}

func TestRunOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	err := os.WriteFile(path, []byte("a much longer line that was here before\nand another\n"), 0644)
	require.NoError(t, err)

	w := &writer.Writer{Stdout: &bytes.Buffer{}}
	require.NoError(t, w.Run("first", path))
	require.NoError(t, w.Run("second", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Hello, the message was: second\n", string(data))
}

func TestRunUnwritable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	var stdout bytes.Buffer
	w := &writer.Writer{Stdout: &stdout}

	err := w.Run("hi", path)
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), "open output")
	require.Contains(t, err.Error(), path)

	require.Equal(t, "Hello World. We will write this message: hi\n", stdout.String(),
		"completion line must not be printed after a failure")
	require.NoFileExists(t, path)
}

func TestRunStdoutFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	w := &writer.Writer{Stdout: failingWriter{}}

	err := w.Run("hi", path)
	require.ErrorIs(t, err, errStdout)
	require.NoFileExists(t, path)
}

func TestNew(t *testing.T) {
	t.Parallel()

	require.Equal(t, os.Stdout, writer.New().Stdout)
}

var errStdout = errors.New("stdout closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errStdout
}
