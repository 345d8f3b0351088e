package upper

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const outputMode = 0644

// Run writes the upper-cased contents of input to output, replacing
// whatever output held before.
func Run(input, output string) error {
	logrus.Infof("Hello There, we will take the contents of %s", input)
	logrus.Info("and make them all UPPER CASE!!")
	logrus.Infof("Find the result in %s", output)

	data, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	logrus.Debugf("Read %d bytes from %s", len(data), input)

	return writeFile(output, strings.ToUpper(string(data)))
}

func writeFile(path, contents string) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputMode)
	if err != nil {
		return errors.Wrap(err, "open output")
	}
	defer func() {
		cerr := file.Close()
		if err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close output")
		}
	}()

	_, err = file.WriteString(contents)
	if err != nil {
		return errors.Wrap(err, "write output")
	}
	logrus.Debugf("Wrote %d bytes to %s", len(contents), path)

	return nil
}
