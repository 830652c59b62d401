package instance

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/centraliser/transformation"
)

var (
	// ErrNoCandidate indicates a document without a candidate.
	ErrNoCandidate = errors.New("instance: candidate is missing")
	// ErrEmpty indicates an empty document.
	ErrEmpty = errors.New("instance: document is empty")
)

// Instance is one membership problem as written in a file.
type Instance struct {
	// Name is an optional label.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	// Candidate holds the images of the transformation to test.
	Candidate []int `yaml:"candidate" json:"candidate"`
	// Generators holds the images of each generator.
	Generators [][]int `yaml:"generators" json:"generators"`
	// Expect optionally records the known answer.
	Expect *bool `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Load reads and parses the file at path. The instance is not validated.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", path, err)
	}
	inst, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Parse decodes a YAML or JSON document. Unknown fields are rejected.
func Parse(data []byte) (*Instance, error) {
	var inst Instance
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&inst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}

		return nil, fmt.Errorf("instance: decode: %w", err)
	}

	return &inst, nil
}

// Validate checks every row and returns all problems as a
// *multierror.Error, or nil. Problems wrap ErrNoCandidate,
// transformation.ErrEmptyGenerators, transformation.ErrImageOutOfRange or
// transformation.ErrDegreeMismatch.
func (in *Instance) Validate() error {
	var result *multierror.Error
	if in.Candidate == nil {
		result = multierror.Append(result, ErrNoCandidate)
	} else if _, err := transformation.New(in.Candidate); err != nil {
		result = multierror.Append(result, fmt.Errorf("candidate: %w", err))
	}
	if len(in.Generators) == 0 {
		result = multierror.Append(result, transformation.ErrEmptyGenerators)
	}

	for k, row := range in.Generators {
		if _, err := transformation.New(row); err != nil {
			result = multierror.Append(result, fmt.Errorf("generator %d: %w", k, err))
		}
		if len(row) != len(in.Generators[0]) {
			result = multierror.Append(result, fmt.Errorf("%w: generator %d has degree %d, generator 0 has degree %d",
				transformation.ErrDegreeMismatch, k, len(row), len(in.Generators[0])))
		}
	}
	if in.Candidate != nil && len(in.Generators) > 0 && len(in.Candidate) != len(in.Generators[0]) {
		result = multierror.Append(result, fmt.Errorf("%w: candidate has degree %d, generators have degree %d",
			transformation.ErrDegreeMismatch, len(in.Candidate), len(in.Generators[0])))
	}

	return result.ErrorOrNil()
}

// Transformations validates the instance and converts it.
func (in *Instance) Transformations() (transformation.Transformation, []transformation.Transformation, error) {
	if err := in.Validate(); err != nil {
		return transformation.Transformation{}, nil, err
	}
	f, _ := transformation.New(in.Candidate) // validated
	gens := make([]transformation.Transformation, len(in.Generators))
	for k, row := range in.Generators {
		gens[k], _ = transformation.New(row)
	}

	return f, gens, nil
}

// FromTransformations builds an Instance, e.g. for writing a problem back out.
func FromTransformations(f transformation.Transformation, gens []transformation.Transformation) *Instance {
	in := &Instance{Candidate: f.Images(), Generators: make([][]int, len(gens))}
	for k, g := range gens {
		in.Generators[k] = g.Images()
	}

	return in
}

// Marshal encodes the instance as YAML.
func (in *Instance) Marshal() ([]byte, error) {
	return yaml.Marshal(in)
}
