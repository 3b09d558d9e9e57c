package streams

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func Test_OutputName(t *testing.T) {
	require.Equal(t, filepath.Join("docs", "encrypted-note.txt"), OutputName(filepath.Join("docs", "note.txt"), "encrypted-", ""))
	require.Equal(t, filepath.Join("out", "decrypted-note.txt"), OutputName(filepath.Join("docs", "note.txt"), "decrypted-", "out"))
	require.Equal(t, "encrypted-note.txt", OutputName("note.txt", "encrypted-", ""))
	require.Equal(t, Stdio, OutputName(Stdio, "encrypted-", "out"))
}

func Test_ReadWriteFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "files")
	require.NoErrorf(t, err, "Could not create temp dir: %v", err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "message.txt")
	require.NoError(t, WriteFile(name, []byte("Hello!")))

	data, err := ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "Hello!", string(data))

	require.NoError(t, WriteFile(name, []byte("Hi")))
	data, err = ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "Hi", string(data))

	_, err = ReadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))
}

func Test_NamedReader(t *testing.T) {
	f, err := ioutil.TempFile("", "test")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)
	defer os.Remove(f.Name())

	obj := NewNamedReader(f, f.Name())
	defer obj.Close()

	require.Equal(t, f.Name(), obj.String())
}

func Test_TrimLineEnding(t *testing.T) {
	require.Equal(t, "o&>", string(TrimLineEnding([]byte("o&>\r\n"))))
	require.Equal(t, "o&>", string(TrimLineEnding([]byte("o&>\n\n"))))
	require.Equal(t, " o&> ", string(TrimLineEnding([]byte(" o&> "))))
	require.Empty(t, TrimLineEnding([]byte("\n")))
}
