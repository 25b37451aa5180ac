// Package app wires configuration, logging and the API gateway into the
// console UI.
package app

import (
	"context"
	"fmt"

	"github.com/LLZ-DinosaurEgg/douban-console/internal/api"
	"github.com/LLZ-DinosaurEgg/douban-console/internal/config"
	"github.com/LLZ-DinosaurEgg/douban-console/internal/errlog"
	"github.com/LLZ-DinosaurEgg/douban-console/internal/logging"
	"github.com/LLZ-DinosaurEgg/douban-console/internal/prefs"
	"github.com/LLZ-DinosaurEgg/douban-console/internal/ui"
)

// Options configure the console application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/douban-console/prefs.toml
	APIBind    string // overrides the configured backend address
	PageSize   int    // overrides the configured post page size
}

// Run boots the console TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	apiBind := cfg.APIBase
	if opts.APIBind != "" {
		apiBind = opts.APIBind
	}
	pageSize := cfg.PageSize
	if opts.PageSize > 0 {
		pageSize = opts.PageSize
	}

	// The TUI owns the terminal, so logs go to a file.
	log, closeLog, err := logging.Open(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := api.NewClient(apiBind, log)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	errs := errlog.New(errlog.DefaultCapacity, log)

	log.Info().Str("api", apiBind).Int("page_size", pageSize).Msg("console starting")

	uiOpts := ui.Options{
		Context:     ctx,
		Gateway:     client,
		Errors:      errs,
		PageSize:    pageSize,
		ThemeName:   userPrefs.Theme,
		MatchedOnly: userPrefs.MatchedOnly,
		PrefsPath:   opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
