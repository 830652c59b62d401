package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/centraliser/semigroup"
)

func newEnumerateCmd(a *app) *cobra.Command {
	var (
		p        problemFlags
		elements bool
	)
	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Enumerate the semigroup generated by the generators",
		Args:  cobra.NoArgs,
		Example: `  centraliser enumerate --full 3
  centraliser enumerate -g "[1, 2, 0]" -g "[0, 0, 2]" --elements`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := p.load()
			if err != nil {
				return err
			}
			gens, _, err := generators(in)
			if err != nil {
				return err
			}
			e, err := semigroup.New(gens,
				semigroup.WithContext(cmd.Context()),
				semigroup.WithMaxElements(a.v.GetInt("max-elements")),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "size: %d\n", e.Size())
			fmt.Fprintf(out, "idempotents: %d\n", len(e.Idempotents()))
			if !elements {
				return nil
			}
			for pos, x := range e.Elements() {
				w, _ := e.Factorisation(pos) // pos is in range
				fmt.Fprintf(out, "%d\t%v\t%v\n", pos, x, w)
			}

			return nil
		},
	}
	p.register(cmd, false)
	cmd.Flags().BoolVar(&elements, "elements", false, "list every element with a shortest factorisation")

	return cmd
}
