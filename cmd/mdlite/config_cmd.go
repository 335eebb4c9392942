package main

import (
	"fmt"

	"github.com/alnah/go-mdlite/internal/config"
)

// runConfig prints the effective configuration: the named file (or
// MDLITE_CONFIG) decoded over defaults, with environment overrides applied.
func runConfig(args []string, env *Environment) error {
	flags, err := parseConfigFlags(args, env.Stdout)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.config, loadEnvConfig())
	if err != nil {
		return err
	}

	out, err := config.Dump(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
