package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the tag statistics of a corpus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			reader, err := buildReader(cfg)
			if err != nil {
				return err
			}

			var instances, tokens, tagged, spans int
			for inst, err := range reader.Read(cmd.Context(), input) {
				if err != nil {
					return err
				}
				instances++
				tokens += len(inst.Tokens)
				for _, tag := range inst.Tags {
					if tag == "O" {
						continue
					}
					tagged++
					// A span opens on B in IOB1 and on B or U in BIOUL.
					if strings.HasPrefix(tag, "B") || strings.HasPrefix(tag, "U") {
						spans++
					}
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source:        %s\n", input)
			fmt.Fprintf(out, "coding scheme: %s\n", reader.Scheme())
			fmt.Fprintf(out, "instances:     %d\n", instances)
			fmt.Fprintf(out, "tokens:        %d\n", tokens)
			fmt.Fprintf(out, "tagged tokens: %d\n", tagged)
			fmt.Fprintf(out, "spans:         %d\n", spans)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Corpus file path or URL (csv|tsv|xlsx)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
