package main

import (
	"fmt"
	"github.com/bokysan/triblock/internal/args"
	"github.com/bokysan/triblock/internal/commands/decrypt"
	"github.com/bokysan/triblock/internal/commands/encrypt"
	"github.com/bokysan/triblock/internal/commands/version"
	tbFlags "github.com/bokysan/triblock/internal/flags"
	"github.com/bokysan/triblock/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Triblock is the main executable
type Triblock struct {
	parser *flags.Parser
}

// NewTriblock will create a new instance of Triblock and initialize the parser
func NewTriblock() *Triblock {
	executablePath := path.Base(os.Args[0])

	tb := &Triblock{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	tb.setupGeneral()
	tb.setupKey()
	tb.setupVersion()
	tb.setupEncrypt()
	tb.setupDecrypt()

	return tb
}

// setupGeneral will configure general options
func (tb *Triblock) setupGeneral() {
	if _, err := tb.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// setupKey will configure the modulus and exponents
func (tb *Triblock) setupKey() {
	if _, err := tb.parser.AddGroup("Key", "Key options", &args.Key); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// setupVersion adds the `version` command
func (tb *Triblock) setupVersion() {
	_, err := tb.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		&version.Command{},
	)
	util.MustErrorNilOrExit(err)
}

// setupEncrypt adds the `encrypt` command
func (tb *Triblock) setupEncrypt() {
	_, err := tb.parser.AddCommand(
		"encrypt",
		"Encrypt files",
		"Encrypt every given file with the public key into 'encrypted-<name>'. Use '-' for standard input.",
		encrypt.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupDecrypt adds the `decrypt` command
func (tb *Triblock) setupDecrypt() {
	_, err := tb.parser.AddCommand(
		"decrypt",
		"Decrypt files",
		"Decrypt every given file with the private key into 'decrypted-<name>'. Use '-' for standard input.",
		decrypt.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// main starts triblock and reads the configuration file
func main() {
	tb := NewTriblock()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			})
		}

		return tbFlags.NewYamlParser(tb.parser).ParseFile(file)
	}

	_, err := tb.parser.Parse()
	util.MustErrorNilOrExit(err)
}
