package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/centraliser/quotient"
)

type barOutput struct {
	Blocks  [][]int `json:"blocks" yaml:"blocks,flow"`
	Sources []int   `json:"sources" yaml:"sources,flow"`
	Sinks   []int   `json:"sinks" yaml:"sinks,flow"`
}

func newBarCmd(_ *app) *cobra.Command {
	var (
		p      problemFlags
		output string
	)
	cmd := &cobra.Command{
		Use:     "bar",
		Short:   "Print the orbit quotient of the generators",
		Long:    "bar prints the strongly connected components of the graph with an edge i -> a(i) for every generator a.",
		Args:    cobra.NoArgs,
		Example: `  centraliser bar -g "[1, 2, 3, 2]"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			in, err := p.load()
			if err != nil {
				return err
			}
			gens, n, err := generators(in)
			if err != nil {
				return err
			}
			part, err := quotient.BarContext(cmd.Context(), n, gens)
			if err != nil {
				return err
			}

			res := barOutput{Sources: part.Sources(), Sinks: part.Sinks()}
			for _, b := range part.Blocks() {
				res.Blocks = append(res.Blocks, b)
			}
			if output != outputText {
				return printStructured(cmd.OutOrStdout(), output, res)
			}
			out := cmd.OutOrStdout()
			for i, b := range res.Blocks {
				fmt.Fprintf(out, "%d: %v\n", i, b)
			}
			fmt.Fprintf(out, "sources: %v\n", res.Sources)
			fmt.Fprintf(out, "sinks: %v\n", res.Sinks)

			return nil
		},
	}
	p.register(cmd, false)
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")

	return cmd
}
