package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/five82/dexterm/internal/catalog"
	"github.com/five82/dexterm/internal/config"
	"github.com/five82/dexterm/internal/detail"
	"github.com/five82/dexterm/internal/pokeapi"
	"github.com/five82/dexterm/internal/prefs"
	"github.com/five82/dexterm/internal/ui"
)

// Options configure the dexterm application. Non-zero fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/dexterm/prefs.toml
	APIURL     string
	PageSize   int
	Verbose    bool
}

// Env is everything built from configuration that both the TUI and the
// headless commands need.
type Env struct {
	Config config.Config
	Logger *zap.Logger
	Client *pokeapi.Client
	State  *catalog.State
}

// Setup loads configuration, opens the log file and wires the API client and
// catalog state.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if apiURL := strings.TrimSpace(opts.APIURL); apiURL != "" {
		cfg.APIURL = apiURL
	}
	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := NewLogger(cfg.LogFile, opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	client, err := pokeapi.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("init api client: %w", err)
	}

	state := catalog.NewState(client, catalog.PagerOptions{
		PageSize: cfg.PageSize,
		Logger:   logger,
	})

	logger.Info("dexterm starting",
		zap.String("api_url", client.BaseURL()),
		zap.Int("page_size", cfg.PageSize),
		zap.Duration("request_timeout", cfg.RequestTimeout),
	)

	return &Env{Config: cfg, Logger: logger, Client: client, State: state}, nil
}

// Close flushes the logger.
func (e *Env) Close() {
	_ = e.Logger.Sync()
}

// Run boots the dexterm TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		env.Logger.Warn("using default prefs", zap.Error(err))
	}

	loader, err := detail.NewLoader(env.Client, detail.LoaderOptions{Logger: env.Logger})
	if err != nil {
		return fmt.Errorf("init detail loader: %w", err)
	}

	err = ui.Run(ui.Options{
		Context:   ctx,
		State:     env.State,
		Describer: loader,
		Logger:    env.Logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogPath:   env.Config.LogFile,
	})
	if err != nil {
		env.Logger.Error("ui exited with error", zap.Error(err))
		return err
	}
	env.Logger.Info("dexterm stopped")
	return nil
}

// NewLogger builds a JSON file logger at path. The terminal belongs to the
// TUI, so nothing is written to stdout or stderr.
func NewLogger(path string, verbose bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
