package main

import (
	"fmt"
	"os"

	pflag "github.com/spf13/pflag"

	"seqlist/config"
	"seqlist/dataset"
	"seqlist/demo"
	"seqlist/logger"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := logger.Setup(cfg.LoggerOptions()); err != nil {
		logger.Warn("log file unavailable, logging to stdout:", err)
	}
	defer logger.Close()

	fx, err := loadFixtures(cfg.Data)
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
	if err := demo.New(cfg, fx, os.Stdout).Run(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
	fmt.Println("\n TESTED ")
}

// parseFlags loads the config file named by --config, then lets every flag
// given on the command line override it.
func parseFlags(args []string) (*config.Config, error) {
	fs := pflag.NewFlagSet("seqdemo", pflag.ContinueOnError)
	var cfgPath string // yaml config file
	var format string
	var data string
	var where string
	var apply string
	var level string
	fs.StringVarP(&cfgPath, "config", "c", "", "yaml config file.")
	fs.StringVarP(&format, "format", "f", "", "[bracket], [tree] or [fields] output format.")
	fs.StringVarP(&data, "data", "d", "", "yaml fixture file.default is the built-in people and products.")
	fs.StringVarP(&where, "where", "w", "", "javascript predicate over a person `e`, replaces the adult check.")
	fs.StringVarP(&apply, "apply", "a", "", "javascript statement mutating a person `e`, replaces the birthday.")
	fs.StringVarP(&level, "log-level", "l", "", "log level:DEBUG,INFO,WARN,ERROR.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = format
		case "data":
			cfg.Data = data
		case "where":
			cfg.Where = where
		case "apply":
			cfg.Apply = apply
		case "log-level":
			cfg.LogLevel = level
		}
	})
	return cfg, cfg.Validate()
}

func loadFixtures(path string) (*dataset.Fixtures, error) {
	if path == "" {
		return dataset.Default()
	}
	return dataset.Load(path)
}
