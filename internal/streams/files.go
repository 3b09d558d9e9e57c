package streams

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Stdio is the file name which stands for standard input or output
const Stdio = "-"

// NamedReader implements the io.ReadCloser interface as well as fmt.Stringer, so the name of the
// underlying file is shown when the reader is printed with `%v`.
type NamedReader struct {
	io.ReadCloser
	name string
}

// NewNamedReader will create a new NamedReader with a given name
func NewNamedReader(wrapped io.ReadCloser, name string) *NamedReader {
	return &NamedReader{
		ReadCloser: wrapped,
		name:       name,
	}
}

func (nr *NamedReader) String() string {
	return nr.name
}

// NamedWriter is the io.WriteCloser counterpart of NamedReader.
type NamedWriter struct {
	io.WriteCloser
	name string
}

// NewNamedWriter will create a new NamedWriter with a given name
func NewNamedWriter(wrapped io.WriteCloser, name string) *NamedWriter {
	return &NamedWriter{
		WriteCloser: wrapped,
		name:        name,
	}
}

func (nw *NamedWriter) String() string {
	return nw.name
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// Open opens the file for reading. Stdio opens the standard input, which is not closed
// when the reader is closed.
func Open(path string) (*NamedReader, error) {
	if path == Stdio {
		return NewNamedReader(ioutil.NopCloser(os.Stdin), "stdin"), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return NewNamedReader(f, path), nil
}

// Create creates (or truncates) the file for writing. Stdio writes to the standard output.
func Create(path string) (*NamedWriter, error) {
	if path == Stdio {
		return NewNamedWriter(nopWriteCloser{os.Stdout}, "stdout"), nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return NewNamedWriter(f, path), nil
}

// ReadFile reads the whole file (or standard input) in one go.
func ReadFile(path string) ([]byte, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := r.Close(); err != nil {
			log.Errorf("Could not close %v: %v", r, err)
		}
	}()

	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %v", r)
	}
	log.Tracef("Read %d bytes from %v", len(data), r)
	return data, nil
}

// WriteFile writes the data to the file (or standard output), replacing any existing content.
func WriteFile(path string, data []byte) error {
	w, err := Create(path)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return errors.Wrapf(err, "could not write %v", w)
	}
	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "could not close %v", w)
	}
	log.Tracef("Wrote %d bytes to %v", len(data), w)
	return nil
}

// OutputName derives the name of the output file by prefixing the base name of the input.
// The output is placed into dir, or next to the input when dir is empty. Standard input
// maps to standard output.
func OutputName(input, prefix, dir string) string {
	if input == Stdio {
		return Stdio
	}
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, prefix+filepath.Base(input))
}

// TrimLineEnding strips trailing CR and LF characters, which editors tend to add to the
// end of a file.
func TrimLineEnding(data []byte) []byte {
	return bytes.TrimRight(data, "\r\n")
}
