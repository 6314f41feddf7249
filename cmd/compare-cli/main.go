// Command compare-cli resolves authored comparison content and renders it
// through any registered renderer, or browses it interactively.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-compare/pkg/loader"
	"github.com/goliatone/go-compare/pkg/render"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	handleError(err)
	if err != nil {
		os.Exit(1)
	}
}

type globalOptions struct {
	logLevel     string
	fragmentPath string
	activeTab    string
	defaultTitle string
	themeFiles   []string
	themeName    string
	themeVariant string
	logger       *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{logLevel: "warn"}
	cmd := &cobra.Command{
		Use:           "compare-cli",
		Short:         "Render side-by-side comparisons from authored content",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := buildLogger(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log verbosity (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.fragmentPath, "fragment", "", "Previously rendered block markup consulted for missing values")
	cmd.PersistentFlags().StringVar(&opts.activeTab, "tab", "", "Specification id to activate initially")
	cmd.PersistentFlags().StringVar(&opts.defaultTitle, "default-title", "", "Title used when the content provides none")
	cmd.PersistentFlags().StringSliceVar(&opts.themeFiles, "theme-file", nil, "Theme manifest YAML files (repeatable)")
	cmd.PersistentFlags().StringVar(&opts.themeName, "theme", "", "Theme name (defaults to the first theme file)")
	cmd.PersistentFlags().StringVar(&opts.themeVariant, "variant", "", "Theme variant")

	renderCmd := newRenderCommand(opts)
	browseCmd := newBrowseCommand(opts)
	specsCmd := newSpecsCommand(opts)
	cmd.AddCommand(renderCmd, browseCmd, specsCmd)

	bindViper(cmd, renderCmd, browseCmd, specsCmd)
	return cmd
}

// bindViper lets COMPARE_* environment variables and an optional config file
// supply any flag the user did not set explicitly.
func bindViper(commands ...*cobra.Command) {
	if len(commands) == 0 {
		return
	}
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("COMPARE")
	v.AutomaticEnv()
	configFile := os.Getenv("COMPARE_CONFIG")
	configureConfigFile(v, configFile)

	cobra.OnInitialize(func() {
		for _, cmd := range commands {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				cobra.CheckErr(err)
			}
			if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
				cobra.CheckErr(err)
			}
		}
		if err := readConfigFile(v, configFile != ""); err != nil {
			cobra.CheckErr(err)
		}
		for _, cmd := range commands {
			for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
				fs.VisitAll(func(f *pflag.Flag) {
					if f.Changed || !v.IsSet(f.Name) {
						return
					}
					if val := fmt.Sprintf("%v", v.Get(f.Name)); val != "" {
						_ = f.Value.Set(val)
					}
				})
			}
		}
	})
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("compare")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "compare"))
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func buildLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning", "":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", level)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func handleError(err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", errorMessage(err))
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, loader.ErrUnsupportedFormat):
		return fmt.Sprintf("%s\nHint: content files must end in .json, .yaml or .yml; use - to read JSON from stdin.", err)
	case errors.Is(err, render.ErrRendererNotFound):
		return fmt.Sprintf("%s\nHint: render supports vanilla, markdown and json; use 'compare-cli browse' for the interactive view.", err)
	}
	return err.Error()
}
