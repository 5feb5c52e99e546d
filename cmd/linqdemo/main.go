// Command linqdemo runs example queries with the linq and lazy engines.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kbukum/linqkit/errors"
	"github.com/kbukum/linqkit/logger"
	"github.com/kbukum/linqkit/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "linqdemo:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("linqdemo", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", "", "path to config.yml")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	info := version.Get()
	if *showVersion {
		_, err := fmt.Fprintln(out, "linqdemo", info.String())
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	log := logger.NewWithWriter(&cfg.Logging, cfg.Name, out)
	log.Info("starting", info.Fields())

	failed := 0
	for _, name := range cfg.Demo.Examples {
		exLog := log.WithComponent(name)
		start := time.Now()
		result, err := examples[name](cfg.Demo)
		if err != nil {
			failed++
			fields := logger.ErrorFields(name, err)
			fields[logger.FieldCode] = errors.CodeOf(err)
			exLog.Error("example failed", fields)
			continue
		}
		exLog.Info("example done", logger.Fields(logger.FieldResult, result), logger.DurationFields(name, time.Since(start)))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d examples failed", failed, len(cfg.Demo.Examples))
	}
	return nil
}
