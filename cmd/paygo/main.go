package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cliLogger is set by the root command before any subcommand runs
var cliLogger *zap.SugaredLogger = zap.NewNop().Sugar()

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "paygo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "paygo",
	Short: "Paystub calculator CLI",
	Long: `Hourly paystub calculator: gross pay, federal and state withholding, FICA,
benefit deductions and year-to-date estimates.

Settings can also come from a config file (--config) or environment variables
prefixed with PAYGO_, e.g. PAYGO_FORMAT=json or PAYGO_LOG_LEVEL=debug.
Flags take precedence over environment variables and the config file.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// initConfig binds flags, environment and the optional config file into viper and
// builds the logger
func initConfig(cmd *cobra.Command, args []string) error {
	viper.SetEnvPrefix("PAYGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
	}

	logger, err := newLogger(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	cliLogger = logger
	return nil
}

// newLogger builds a human-readable zap logger writing to stderr
func newLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	zapConfig.DisableStacktrace = true
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Sugar(), nil
}

// newEngine builds an engine over the configured tax tables
func newEngine() (*calculation.CalculationEngine, error) {
	tables, err := config.LoadTaxTables(viper.GetString("tables"))
	if err != nil {
		return nil, err
	}
	engine := calculation.NewCalculationEngineWithTables(tables)
	engine.RequireNonZeroShift = viper.GetBool("require-hours")
	engine.SetLogger(cliLogger)
	return engine, nil
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file with default flag values (yaml, json or toml)")
	rootCmd.PersistentFlags().String("tables", "", "Tax table file (default: built-in 2024 tables)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	viper.SetDefault("log-level", "warn")
	viper.SetDefault("format", "console")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	err := rootCmd.Execute()
	_ = cliLogger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
