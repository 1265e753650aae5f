// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"

	"github.com/katalvlaran/algeo/matrix"
	"gopkg.in/yaml.v3"
)

// stepDoc is the wire form of a Step.
type stepDoc struct {
	Description string      `yaml:"description"`
	Before      [][]float64 `yaml:"before,omitempty,flow"`
	After       [][]float64 `yaml:"after,omitempty,flow"`
}

var (
	_ yaml.Marshaler   = Step{}
	_ yaml.Unmarshaler = (*Step)(nil)
)

// MarshalYAML encodes the step with its snapshots as row grids.
func (s Step) MarshalYAML() (interface{}, error) {
	doc := stepDoc{Description: s.Description}
	var err error
	if s.Before != nil {
		if doc.Before, err = matrix.ToRows(s.Before); err != nil {
			return nil, fmt.Errorf("trace: before: %w", err)
		}
	}
	if s.After != nil {
		if doc.After, err = matrix.ToRows(s.After); err != nil {
			return nil, fmt.Errorf("trace: after: %w", err)
		}
	}

	return doc, nil
}

// UnmarshalYAML decodes the form written by MarshalYAML.
// Grids must be rectangular; missing grids decode to nil snapshots.
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	var doc stepDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	out := Step{Description: doc.Description}
	var err error
	if len(doc.Before) > 0 {
		// non-finite values are legal in snapshots of policy-free matrices
		if out.Before, err = matrix.FromRows(doc.Before, matrix.WithNoValidateNaNInf()); err != nil {
			return fmt.Errorf("trace: before: %w", err)
		}
	}
	if len(doc.After) > 0 {
		if out.After, err = matrix.FromRows(doc.After, matrix.WithNoValidateNaNInf()); err != nil {
			return fmt.Errorf("trace: after: %w", err)
		}
	}
	*s = out

	return nil
}
