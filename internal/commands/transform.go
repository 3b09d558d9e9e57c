package commands

import (
	"fmt"
	"github.com/bokysan/triblock/internal/streams"
	"github.com/hashicorp/go-multierror"
	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// Transform converts the whole content of one file
type Transform func(data []byte) ([]byte, error)

// Output describes where and how the transformed files are written
type Output struct {
	// Prefix is prepended to the base name of the input file
	Prefix string
	// Dir is the output directory. Empty means next to the input file.
	Dir string
	// Stdout writes every result to the standard output instead of a file
	Stdout bool
	// Verb is used in the messages to the user, e.g. "encrypted"
	Verb string
}

// Status is where the messages to the user are written
var Status io.Writer = ansi.NewAnsiStderr()

// ProcessFiles runs the transform over every file. A failed file does not stop the others;
// all failures are returned together.
func ProcessFiles(files []string, out Output, transform Transform) error {
	if len(files) == 0 {
		return errors.New("no files given")
	}

	var errs error
	for _, file := range files {
		if err := processFile(file, out, transform); err != nil {
			log.WithError(err).Debugf("Could not process %v", file)
			errs = multierror.Append(errs, errors.Wrapf(err, "%v", file))
		}
	}
	return errs
}

func processFile(file string, out Output, transform Transform) error {
	data, err := streams.ReadFile(file)
	if err != nil {
		return err
	}

	result, err := transform(data)
	if err != nil {
		return err
	}

	target := streams.OutputName(file, out.Prefix, out.Dir)
	if out.Stdout {
		target = streams.Stdio
	}
	if err := streams.WriteFile(target, result); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"input":  file,
		"output": target,
		"bytes":  len(result),
	}).Infof("File %s", out.Verb)

	if target != streams.Stdio {
		_, _ = fmt.Fprintf(Status, "The file %q has been %s!\nThe %s file is saved as %q\n", file, out.Verb, out.Verb, target)
	}
	return nil
}
