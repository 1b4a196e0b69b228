package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/vitrineapp/vitrine/internal/catalog"
	"github.com/vitrineapp/vitrine/internal/config"
	"github.com/vitrineapp/vitrine/internal/fakestore"
	"github.com/vitrineapp/vitrine/internal/prefs"
	"github.com/vitrineapp/vitrine/internal/state"
	"github.com/vitrineapp/vitrine/internal/ui"
)

// Options configure the vitrine application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/vitrine/prefs.toml
	Endpoint   string // overrides the configured catalog endpoint
}

// Run boots the vitrine TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = opts.Endpoint
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	client, err := fakestore.NewClient(cfg.Endpoint, cfg.Timeout)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	store := state.NewStore()
	store.SetSortMode(catalog.ParseSortMode(userPrefs.Sort))

	// The TUI owns the terminal; diagnostics go to a log file instead.
	closeLog := redirectLog()
	defer closeLog()

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
	}
	return ui.Run(uiOpts)
}

// redirectLog points the stdlib logger at vitrine's diagnostics file.
// On any failure logging is discarded rather than corrupting the display.
func redirectLog() func() {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		log.SetOutput(devNull{})
		return func() {}
	}
	dir := filepath.Join(cacheDir, "vitrine")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(devNull{})
		return func() {}
	}
	file, err := os.OpenFile(filepath.Join(dir, "vitrine.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(devNull{})
		return func() {}
	}
	log.SetOutput(file)
	return func() { _ = file.Close() }
}

type devNull struct{}

func (devNull) Write(p []byte) (int, error) { return len(p), nil }
