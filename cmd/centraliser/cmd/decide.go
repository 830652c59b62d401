package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/centraliser/membership"
)

// errUnexpected is returned when an instance's recorded answer disagrees.
var errUnexpected = errors.New("answer differs from the instance's expect field")

func newDecideCmd(a *app) *cobra.Command {
	var (
		p      problemFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Decide whether the candidate is in the semigroup generated by the generators",
		Args:  cobra.NoArgs,
		Example: `  centraliser decide -f instance.yaml
  centraliser decide -c "[2, 3, 2, 3]" -g "[1, 2, 3, 2]"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			in, err := p.load()
			if err != nil {
				return err
			}
			f, gens, err := in.Transformations()
			if err != nil {
				return err
			}

			log := a.logger.WithField("instance", in.Name)
			res, err := membership.Decide(f, gens,
				membership.WithContext(cmd.Context()),
				membership.WithLogger(log),
				membership.WithMaxElements(a.v.GetInt("max-elements")),
			)
			if err != nil {
				return err
			}

			if output == outputText {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "member: %t\n", res.Member)
				fmt.Fprintf(out, "stage: %s\n", res.Stage)
				fmt.Fprintf(out, "blocks: %d\n", res.Blocks)
				if res.Member {
					fmt.Fprintf(out, "factorisation: %v\n", res.Factorisation)
				}
			} else if err = printStructured(cmd.OutOrStdout(), output, res); err != nil {
				return err
			}

			if in.Expect != nil && *in.Expect != res.Member {
				return fmt.Errorf("%w: expected %t", errUnexpected, *in.Expect)
			}

			return nil
		},
	}
	p.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")

	return cmd
}
