package encrypt

import (
	"github.com/bokysan/triblock/internal/args"
	"github.com/bokysan/triblock/internal/cipher"
	"github.com/bokysan/triblock/internal/commands"
	"github.com/bokysan/triblock/internal/logging"
	"github.com/bokysan/triblock/internal/streams"
	log "github.com/sirupsen/logrus"
)

// Prefix is prepended to the names of encrypted files
const Prefix = "encrypted-"

type Command struct {
	Lossy     bool   `yaml:"lossy"      long:"lossy"                env:"TRIBLOCK_LOSSY"   description:"Replace characters outside of the alphabet with 'a' instead of failing"`
	Workers   int    `yaml:"workers"    short:"w" long:"workers"    env:"TRIBLOCK_WORKERS" description:"Number of goroutines encrypting blocks of one file (default: 1)"`
	OutputDir string `yaml:"output-dir" short:"o" long:"output-dir" env:"TRIBLOCK_OUTPUT"  description:"Directory of the encrypted files. If not set, files are saved next to the originals."`
	Stdout    bool   `yaml:"stdout"     long:"stdout"                                      description:"Write encrypted text to standard output instead of files"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) Execute(files []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	key := args.CipherKey()
	ci, err := cipher.New(key, cipher.WithLossy(c.Lossy), cipher.WithWorkers(c.Workers))
	if err != nil {
		return err
	}
	log.Debugf("Encrypting %d file(s) with %v", len(files), ci.Key())

	return commands.ProcessFiles(files, commands.Output{
		Prefix: Prefix,
		Dir:    c.OutputDir,
		Stdout: c.Stdout,
		Verb:   "encrypted",
	}, func(data []byte) ([]byte, error) {
		return ci.Encode(streams.TrimLineEnding(data))
	})
}
