package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/go-reftag/internal/export"
)

func newConvertCmd() *cobra.Command {
	var (
		input  string
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Read an annotation corpus and write tagged instances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			reader, err := buildReader(cfg)
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				fh, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer func() { _ = fh.Close() }()
				out = fh
			}

			w, err := export.NewWriter(format, out)
			if err != nil {
				return err
			}

			var instances, tagged int
			for inst, err := range reader.Read(cmd.Context(), input) {
				if err != nil {
					return err
				}
				if err := w.Write(inst); err != nil {
					return err
				}
				instances++
				for _, tag := range inst.Tags {
					if tag != "O" {
						tagged++
					}
				}
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}

			slog.Info("conversion complete",
				slog.String("source", input),
				slog.String("format", format),
				slog.Int("instances", instances),
				slog.Int("tagged_tokens", tagged),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Corpus file path or URL (csv|tsv|xlsx)")
	cmd.Flags().StringVar(&output, "output", "-", "Output file path, - for stdout")
	cmd.Flags().StringVar(&format, "format", export.FormatJSONL, "Output format (jsonl or conll)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
