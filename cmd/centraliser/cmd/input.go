package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/centraliser/instance"
	"github.com/katalvlaran/centraliser/transformation"
)

// problemFlags are the ways a command can receive transformations.
type problemFlags struct {
	file       string
	candidate  string
	generators []string
	full       int
}

func (p *problemFlags) register(cmd *cobra.Command, withCandidate bool) {
	cmd.Flags().StringVarP(&p.file, "file", "f", "", "instance file (YAML or JSON)")
	cmd.Flags().StringArrayVarP(&p.generators, "generator", "g", nil, `generator, e.g. "[1, 2, 0]"; repeatable`)
	cmd.Flags().IntVar(&p.full, "full", 0, "use the standard generators of the full transformation monoid of this degree")
	if withCandidate {
		cmd.Flags().StringVarP(&p.candidate, "candidate", "c", "", `candidate transformation, e.g. "[1, 2, 0]"`)
	}
}

// load resolves the flags into an instance. The candidate is optional.
func (p *problemFlags) load() (*instance.Instance, error) {
	sources := 0
	for _, set := range []bool{p.file != "", len(p.generators) > 0, p.full > 0} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, errors.New("exactly one of --file, --generator or --full is required")
	}

	if p.file != "" {
		return instance.Load(p.file)
	}

	var gens []transformation.Transformation
	if p.full > 0 {
		var err error
		if gens, err = transformation.FullTransformationMonoid(p.full); err != nil {
			return nil, err
		}
	}
	for i, s := range p.generators {
		g, err := transformation.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("generator %d: %w", i, err)
		}
		gens = append(gens, g)
	}

	in := &instance.Instance{Generators: make([][]int, len(gens))}
	for k, g := range gens {
		in.Generators[k] = g.Images()
	}
	if p.candidate != "" {
		f, err := transformation.Parse(p.candidate)
		if err != nil {
			return nil, fmt.Errorf("candidate: %w", err)
		}
		in.Candidate = f.Images()
	}

	return in, nil
}

// generators validates and converts only the generators of in.
func generators(in *instance.Instance) ([]transformation.Transformation, int, error) {
	gens := make([]transformation.Transformation, len(in.Generators))
	for k, row := range in.Generators {
		g, err := transformation.New(row)
		if err != nil {
			return nil, 0, fmt.Errorf("generator %d: %w", k, err)
		}
		gens[k] = g
	}
	n, err := transformation.ValidateGenerators(gens)
	if err != nil {
		return nil, 0, err
	}

	return gens, n, nil
}
