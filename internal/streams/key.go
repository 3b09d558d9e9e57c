package streams

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// KeyPrompt is shown before the decryption key is read
const KeyPrompt = "Enter decryption key:"

// PromptKey asks for the decryption key on the given input. A terminal input is read
// without echo, anything else is read as a single line.
func PromptKey(in *os.File, out io.Writer) (uint64, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return ReadKey(in, out)
	}

	if _, err := fmt.Fprintln(out, KeyPrompt); err != nil {
		return 0, errors.WithStack(err)
	}
	line, err := term.ReadPassword(fd)
	if err != nil {
		return 0, errors.Wrap(err, "could not read decryption key")
	}
	_, _ = fmt.Fprintln(out)
	return ParseKey(string(line))
}

// ReadKey prints the prompt and reads the decryption key from a single line of the reader.
func ReadKey(in io.Reader, out io.Writer) (uint64, error) {
	if _, err := fmt.Fprintln(out, KeyPrompt); err != nil {
		return 0, errors.WithStack(err)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return 0, errors.Wrap(err, "could not read decryption key")
	}
	return ParseKey(line)
}

// ParseKey parses a decimal decryption key, ignoring surrounding white space.
func ParseKey(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("decryption key is empty")
	}
	k, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid decryption key %q", s)
	}
	return k, nil
}
