package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/portfolio-builder/internal/config"
	"github.com/jonathan/portfolio-builder/internal/observability"
	"github.com/jonathan/portfolio-builder/internal/store"
)

// runtime bundles the objects every command needs: resolved config, logger
// and an opened profile store.
type runtime struct {
	cfg   config.Config
	log   *zap.Logger
	store *store.ProfileStore
}

// openRuntime resolves configuration (flags win over config file, config file
// wins over environment), builds the logger and opens the profile store.
func openRuntime() (*runtime, error) {
	flags := config.Config{
		StateDir: rootStateDir,
		UserID:   rootUserID,
		LogLevel: rootLogLevel,
		LogFile:  rootLogFile,
		Verbose:  rootVerbose,
	}

	merged := flags
	if rootConfigPath != "" {
		fileCfg, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return nil, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
	}
	merged = merged.MergeWithDefaults(config.FromEnv())
	if merged.UserID == "" {
		merged.UserID = "default"
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}

	log, err := observability.NewLogger(merged.LogLevel, merged.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	stateDir, err := merged.ResolveStateDir()
	if err != nil {
		return nil, err
	}
	kv, err := store.NewFileKV(stateDir)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(kv, merged.UserID, log)
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: merged, log: log, store: st}, nil
}
