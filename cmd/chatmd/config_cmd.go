package main

import (
	"fmt"

	"github.com/alnah/go-chatmd/internal/yamlutil"
)

// runConfig prints the configuration render would use, after config file
// and environment variables are applied.
func runConfig(flags *configFlags, env *Environment) error {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	cfg, err := loadConfig(name)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
