package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/go-reftag/internal/config"
	"github.com/example/go-reftag/internal/server"
	"github.com/example/go-reftag/internal/tagging"
	"github.com/example/go-reftag/internal/tokenizer"
)

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "reftag",
		Short: "Convert annotated court judgments into tagged token sequences",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := server.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func requireConfig() (config.Config, error) {
	if activeCfg.Reader.Kind == "" {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}

// buildReader assembles the dataset reader from the loaded configuration:
// tokenizer first, then the reader wrapping it.
func buildReader(cfg config.Config) (*tagging.Reader, error) {
	tok, err := tokenizer.New(cfg.Reader.Tokenizer, tokenizer.Options{
		VocabPath: cfg.Reader.VocabPath,
	})
	if err != nil {
		return nil, err
	}

	return tagging.New(cfg.Reader.Kind, tagging.ReaderOptions{
		Scheme:           cfg.Reader.CodingScheme,
		LabelNamespace:   cfg.Reader.LabelNamespace,
		TextColumn:       cfg.Reader.TextColumn,
		ReferencesColumn: cfg.Reader.ReferencesColumn,
		Tokenizer:        tok,
		CacheDir:         cfg.Paths.CacheDir,
	})
}
