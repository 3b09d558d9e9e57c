package decrypt

import (
	"github.com/bokysan/triblock/internal/args"
	"github.com/bokysan/triblock/internal/cipher"
	"github.com/bokysan/triblock/internal/commands"
	"github.com/bokysan/triblock/internal/logging"
	"github.com/bokysan/triblock/internal/streams"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

// Prefix is prepended to the names of decrypted files
const Prefix = "decrypted-"

type Command struct {
	Key       uint64 `yaml:"key"        short:"k" long:"key"        env:"TRIBLOCK_KEY"     description:"Decryption key (private exponent). If not set here or in the key options, it's asked for."`
	Workers   int    `yaml:"workers"    short:"w" long:"workers"    env:"TRIBLOCK_WORKERS" description:"Number of goroutines decrypting blocks of one file (default: 1)"`
	OutputDir string `yaml:"output-dir" short:"o" long:"output-dir" env:"TRIBLOCK_OUTPUT"  description:"Directory of the decrypted files. If not set, files are saved next to the originals."`
	Stdout    bool   `yaml:"stdout"     long:"stdout"                                      description:"Write decrypted text to standard output instead of files"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) Execute(files []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	key := args.CipherKey()
	ci, err := cipher.New(key, cipher.WithWorkers(c.Workers))
	if err != nil {
		return err
	}

	d, err := c.privateExponent(ci.Key(), files)
	if err != nil {
		return err
	}
	log.Debugf("Decrypting %d file(s) with %v", len(files), ci.Key())

	return commands.ProcessFiles(files, commands.Output{
		Prefix: Prefix,
		Dir:    c.OutputDir,
		Stdout: c.Stdout,
		Verb:   "decrypted",
	}, func(data []byte) ([]byte, error) {
		return ci.Decode(streams.TrimLineEnding(data), d)
	})
}

// privateExponent picks the decryption key: the command option first, then the key options,
// and finally asks for it on the terminal.
func (c *Command) privateExponent(key cipher.Key, files []string) (uint64, error) {
	if c.Key != 0 {
		return c.Key, nil
	}
	if key.Private != 0 {
		return key.Private, nil
	}
	for _, f := range files {
		if f == streams.Stdio {
			return 0, errors.New("decryption key must be given with --key when decrypting standard input")
		}
	}
	return streams.PromptKey(os.Stdin, os.Stderr)
}
