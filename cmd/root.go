package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chriserin/traitseed/internal/config"
)

var (
	cfgFile string
	verbose bool

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:          "traitseed",
	Short:        "traitseed — turn a traits questionnaire into an assessment seed script",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l

		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfg = loaded
		logger.Debug("config loaded", zap.String("path", cfgFile), zap.String("slug", cfg.Assessment.Slug))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "traitseed.toml", "config file (TOML, or YAML by extension)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withOverrides returns a copy of base with every non-empty flag value
// applied on top.
func withOverrides(base *config.Config, input, output, dialect string) *config.Config {
	c := *base
	if input != "" {
		c.Input = input
	}
	if output != "" {
		c.Output = output
	}
	if dialect != "" {
		c.Dialect = dialect
	}
	return &c
}
