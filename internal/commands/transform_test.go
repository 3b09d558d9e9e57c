package commands

import (
	"bytes"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func upper(data []byte) ([]byte, error) {
	if bytes.Contains(data, []byte("fail")) {
		return nil, errors.New("cannot transform")
	}
	return bytes.ToUpper(data), nil
}

func Test_ProcessFiles(t *testing.T) {
	status := &bytes.Buffer{}
	saved := Status
	Status = status
	defer func() { Status = saved }()

	dir, err := ioutil.TempDir("", "commands")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "a.txt")
	require.NoError(t, ioutil.WriteFile(in, []byte("hello"), 0644))

	err = ProcessFiles([]string{in}, Output{Prefix: "up-", Verb: "uppercased"}, upper)
	require.NoError(t, err)

	data, err := ioutil.ReadFile(filepath.Join(dir, "up-a.txt"))
	require.NoError(t, err)
	require.Equal(t, "HELLO", string(data))
	require.Contains(t, status.String(), "has been uppercased!")

	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0755))
	err = ProcessFiles([]string{in}, Output{Prefix: "up-", Dir: outDir, Verb: "uppercased"}, upper)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(outDir, "up-a.txt"))
}

func Test_ProcessFiles_Errors(t *testing.T) {
	saved := Status
	Status = ioutil.Discard
	defer func() { Status = saved }()

	dir, err := ioutil.TempDir("", "commands")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	missing := filepath.Join(dir, "missing.txt")
	require.NoError(t, ioutil.WriteFile(good, []byte("ok"), 0644))
	require.NoError(t, ioutil.WriteFile(bad, []byte("fail"), 0644))

	err = ProcessFiles([]string{bad, good, missing}, Output{Prefix: "up-", Verb: "uppercased"}, upper)
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "Expected a multierror, got %T", err)
	require.Len(t, merr.Errors, 2)
	require.True(t, strings.Contains(err.Error(), "bad.txt"))
	require.True(t, strings.Contains(err.Error(), "missing.txt"))

	// the good file is processed regardless of the failures around it
	require.FileExists(t, filepath.Join(dir, "up-good.txt"))
	require.NoFileExists(t, filepath.Join(dir, "up-bad.txt"))

	require.Error(t, ProcessFiles(nil, Output{}, upper))
}
