// Package main is the builder-generator command.
//
// builder-generator reads Go interfaces marked with //builder:generate (or
// selected in builder.yaml) and writes, next to each, a mutable builder and
// an immutable implementation of the interface.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
)

func main() {
	cmd, opts, err := Handle(os.Args[1:])
	if err != nil {
		logrus.Fatalf("Unable to handle CLI input: %s", err)
	}

	log := logrus.StandardLogger()
	if opts.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := newRunner(opts, log)

	switch cmd {
	case "gen":
		err = r.Gen(ctx)
	case "check":
		err = r.Check(ctx)
	case "init":
		err = r.Init()
	default:
		logrus.Fatalf("Unrecognized command: %s", cmd)
	}

	if err != nil {
		stop()
		logrus.Fatalf("Unable to complete command: %s", err)
	}
}
