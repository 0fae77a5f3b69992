// Package config loads the RefTag configuration from defaults, an optional
// config file, environment variables, and command-line flags, in ascending
// precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Paths    PathsConfig  `mapstructure:"paths"`
	Reader   ReaderConfig `mapstructure:"reader"`
	Server   ServerConfig `mapstructure:"server"`
}

type PathsConfig struct {
	// CacheDir holds downloaded remote corpora. Empty selects the user
	// cache dir.
	CacheDir string `mapstructure:"cache_dir"`
}

type ReaderConfig struct {
	Kind             string `mapstructure:"kind"`
	CodingScheme     string `mapstructure:"coding_scheme"`
	LabelNamespace   string `mapstructure:"label_namespace"`
	TextColumn       string `mapstructure:"text_column"`
	ReferencesColumn string `mapstructure:"references_column"`
	Tokenizer        string `mapstructure:"tokenizer"`
	VocabPath        string `mapstructure:"vocab_path"`
}

type ServerConfig struct {
	ListenAddr      string        `mapstructure:"listen_addr"`
	MaxTextBytes    int           `mapstructure:"max_text_bytes"`
	Workers         int           `mapstructure:"workers"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Paths: PathsConfig{
			CacheDir: "",
		},
		Reader: ReaderConfig{
			Kind:             "references",
			CodingScheme:     "IOB1",
			LabelNamespace:   "labels",
			TextColumn:       "full_text",
			ReferencesColumn: "references_all",
			Tokenizer:        "lexical",
			VocabPath:        "",
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			MaxTextBytes:    1 << 20,
			Workers:         4,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	fs.String("paths-cache-dir", defaults.Paths.CacheDir, "Directory for downloaded corpora")
	fs.String("reader-kind", defaults.Reader.Kind, "Dataset reader kind")
	fs.String("reader-coding-scheme", defaults.Reader.CodingScheme, "Tag coding scheme (IOB1 or BIOUL)")
	fs.String("reader-label-namespace", defaults.Reader.LabelNamespace, "Vocabulary namespace for tags")
	fs.String("reader-text-column", defaults.Reader.TextColumn, "Corpus column holding the case text")
	fs.String("reader-references-column", defaults.Reader.ReferencesColumn, "Corpus column holding the reference annotations")
	fs.String("reader-tokenizer", defaults.Reader.Tokenizer, "Tokenizer kind (lexical, char, wordpiece, sentencepiece)")
	fs.String("reader-vocab-path", defaults.Reader.VocabPath, "Vocab or model file for subword tokenizers")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-max-text-bytes", defaults.Server.MaxTextBytes, "Maximum request text size in bytes")
	fs.Int("server-workers", defaults.Server.Workers, "Max concurrent tagging requests")
	fs.Duration("server-request-timeout", defaults.Server.RequestTimeout, "Per-request timeout")
	fs.Duration("server-shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown timeout")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("REFTAG")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	if err := v.BindEnv("paths.cache_dir", "REFTAG_CACHE_DIR"); err != nil {
		return Config{}, fmt.Errorf("bind cache env vars: %w", err)
	}
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("reftag")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("paths.cache_dir", c.Paths.CacheDir)
	v.SetDefault("reader.kind", c.Reader.Kind)
	v.SetDefault("reader.coding_scheme", c.Reader.CodingScheme)
	v.SetDefault("reader.label_namespace", c.Reader.LabelNamespace)
	v.SetDefault("reader.text_column", c.Reader.TextColumn)
	v.SetDefault("reader.references_column", c.Reader.ReferencesColumn)
	v.SetDefault("reader.tokenizer", c.Reader.Tokenizer)
	v.SetDefault("reader.vocab_path", c.Reader.VocabPath)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.workers", c.Server.Workers)
	v.SetDefault("server.request_timeout", c.Server.RequestTimeout)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("paths.cache_dir", "paths-cache-dir")
	v.RegisterAlias("reader.kind", "reader-kind")
	v.RegisterAlias("reader.coding_scheme", "reader-coding-scheme")
	v.RegisterAlias("reader.label_namespace", "reader-label-namespace")
	v.RegisterAlias("reader.text_column", "reader-text-column")
	v.RegisterAlias("reader.references_column", "reader-references-column")
	v.RegisterAlias("reader.tokenizer", "reader-tokenizer")
	v.RegisterAlias("reader.vocab_path", "reader-vocab-path")
	v.RegisterAlias("server.listen_addr", "server-listen-addr")
	v.RegisterAlias("server.max_text_bytes", "server-max-text-bytes")
	v.RegisterAlias("server.workers", "server-workers")
	v.RegisterAlias("server.request_timeout", "server-request-timeout")
	v.RegisterAlias("server.shutdown_timeout", "server-shutdown-timeout")
}
