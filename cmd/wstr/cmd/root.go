package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/wstring/core/alloc"
	"github.com/msto63/wstring/core/config"
	mdwerror "github.com/msto63/wstring/core/error"
	mdwlog "github.com/msto63/wstring/core/log"
	"github.com/msto63/wstring/core/wstring"
)

// defaultConfigPath is tried when --config is not given
const defaultConfigPath = "configs/wstr.toml"

var (
	cfgFile string
	verbose bool
	budget  int
)

var rootCmd = &cobra.Command{
	Use:   "wstr",
	Short: "wstr - inspect and exercise small-footprint byte strings",
	Long: `wstr runs wstring operations from the command line.

Commands:
  inspect  - show how a value is stored
  edit     - apply in-place edits (trim, case, pad, replace, remove)
  search   - forward and backward search
  sum      - chained concatenation, optionally of rendered numbers

With --budget the heap is limited to the given number of bytes, which makes
allocation failures visible.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError("wstr", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+defaultConfigPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVar(&budget, "budget", 0, "limit heap buffers to this many bytes")
}

// setup loads the configuration and applies it to the logger and the
// wstring package settings
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("budget") {
		cfg.Set(alloc.KeyKind, alloc.KindBudget)
		cfg.Set(alloc.KeyBudget, budget)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	mdwlog.SetDefault(logger)

	if err := wstring.Configure(cfg); err != nil {
		logger.LogError(err)
		return err
	}
	logger.Debug("configured", mdwlog.Fields{
		"config":    cfg.FilePath(),
		"allocator": cfg.GetString(alloc.KeyKind, alloc.KindHeap),
		"policy":    wstring.Policy().Granularity,
	})
	return nil
}

func loadConfig() (*config.Config, error) {
	options := config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: config.DefaultEnvPrefix,
		Defaults: map[string]interface{}{
			alloc.KeyKind:        alloc.KindHeap,
			alloc.KeyBudget:      alloc.DefaultBudget,
			alloc.KeyGranularity: alloc.DefaultGranularity,
			"log.level":          "info",
			"log.format":         "text",
		},
	}

	path := cfgFile
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err != nil {
			return config.Empty(options), nil
		}
		path = defaultConfigPath
	}

	cfg, err := config.LoadWithOptions(path, options)
	if err != nil {
		return nil, err
	}
	result := cfg.Validate(config.ValidationRules{
		"log.level":  {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error"}},
		"log.format": {Type: "string", OneOf: []string{"text", "json"}},
	})
	if err := result.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(cfg.GetString("log.level", "info"))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").WithCode(mdwerror.CodeInvalidConfig)
	}
	if verbose {
		level = mdwlog.LevelDebug
	}
	format, err := mdwlog.ParseFormat(cfg.GetString("log.format", "text"))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").WithCode(mdwerror.CodeInvalidConfig)
	}
	logger := mdwlog.New().
		WithName("wstr").
		WithFormat(format).
		WithOutput(os.Stderr)
	logger.SetLevel(level)
	return logger, nil
}

// allocationError reports an operation the allocator could not serve
func allocationError(op string, s *wstring.String) error {
	return mdwerror.Newf("%s: allocation failed", op).
		WithCode(mdwerror.CodeAllocationFailed).
		WithOperation("wstr." + op).
		WithDetail("length", s.Len()).
		WithDetail("capacity", s.Cap())
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
