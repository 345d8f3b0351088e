package main

import (
	"io"
	"os"

	"github.com/mousany/msgwriter/logging"
	"github.com/mousany/msgwriter/writer"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	id := logging.Init(stderr)

	app := &cli.App{
		Name:      "msgwriter",
		Version:   "v0.1.0",
		Usage:     "Write a message into a file",
		ArgsUsage: "MESSAGE OUTPUT",
		Writer:    stdout,
		ErrWriter: stderr,

		HideHelpCommand: true,

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "enable debug mode",
				EnvVars: []string{"MSGWRITER_DEBUG"},
			},
		},
		Before: func(c *cli.Context) error {
			logging.SetDebug(c.Bool("debug"))
			logrus.Debugf("Starting run %s", id)
			return nil
		},
		OnUsageError: func(c *cli.Context, err error, _ bool) error {
			return errors.WithMessage(writer.ErrUsage, err.Error())
		},
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return writer.ErrUsage
			}

			w := &writer.Writer{Stdout: stdout}
			return w.Run(c.Args().Get(0), c.Args().Get(1))
		},
	}

	if err := app.Run(args); err != nil {
		logrus.Errorf("%s", err)
		if errors.Is(err, writer.ErrUsage) {
			return 2
		}
		return 1
	}

	return 0
}
