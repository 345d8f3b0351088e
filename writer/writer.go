package writer

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const outputMode = 0644

type Writer struct {
	Stdout io.Writer
}

// New creates a Writer that reports progress on os.Stdout.
func New() *Writer {
	return &Writer{Stdout: os.Stdout}
}

// Run writes the message into the file at path, replacing any previous
// contents, and reports progress on w.Stdout.
func (w *Writer) Run(message, path string) error {
	_, err := fmt.Fprintf(w.Stdout, "Hello World. We will write this message: %s\n", message)
	if err != nil {
		return errors.Wrap(err, "write status")
	}

	err = writeFile(path, message)
	if err != nil {
		return err
	}
	logrus.Debugf("Wrote message to %s", path)

	_, err = fmt.Fprintf(w.Stdout, "Done! try looking into %s\n", path)
	if err != nil {
		return errors.Wrap(err, "write status")
	}

	return nil
}

// writeFile creates or truncates path and writes the formatted line.
func writeFile(path, message string) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputMode)
	if err != nil {
		return errors.Wrap(err, "open output")
	}
	logrus.Debugf("Opened %s for writing", path)

	defer func() {
		cerr := file.Close()
		if err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close output")
		}
	}()

	_, err = fmt.Fprintf(file, "Hello, the message was: %s\n", message)
	if err != nil {
		return errors.Wrap(err, "write output")
	}

	return nil
}
