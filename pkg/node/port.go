package node

import (
	"fmt"
	"strings"

	"github.com/matzehuels/analogue/pkg/types"
)

// MinimumNodeHeight is the height of a node without non-primary ports:
// the top border, the name row and the bottom border.
const MinimumNodeHeight = 3

// NameRow is the row offset of the name and of both primary ports.
const NameRow = 1

// =============================================================================
// Port
// =============================================================================

// Port is a typed connection point of a node.
type Port struct {
	Type types.TypeID
	Name string
}

// NewPort creates a named port.
func NewPort(t types.TypeID, name string) Port {
	return Port{Type: t, Name: name}
}

// PrimaryPort creates an unnamed port for the primary input or output.
func PrimaryPort(t types.TypeID) Port {
	return Port{Type: t}
}

// HasName reports whether the port carries a name.
func (p Port) HasName() bool { return p.Name != "" }

// TypeName returns the display string of the port's type.
func (p Port) TypeName(pool *types.Pool) string {
	return pool.DisplayName(p.Type)
}

// =============================================================================
// Strategy
// =============================================================================

// Strategy controls the vertical arrangement of non-primary ports.
type Strategy uint8

const (
	// Inline puts input and output slots with the same index on the same row.
	Inline Strategy = iota
	// InputsFirst places all inputs above all outputs.
	InputsFirst
	// OutputsFirst places all outputs above all inputs.
	OutputsFirst
)

// String returns the strategy name used in documents and flags.
func (s Strategy) String() string {
	switch s {
	case Inline:
		return "inline"
	case InputsFirst:
		return "inputs-first"
	case OutputsFirst:
		return "outputs-first"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy parses a strategy name. The empty string selects Inline.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "_", "-")) {
	case "", "inline":
		return Inline, nil
	case "inputs-first":
		return InputsFirst, nil
	case "outputs-first":
		return OutputsFirst, nil
	}
	return Inline, fmt.Errorf("unknown rendering strategy %q (want inline, inputs-first or outputs-first)", s)
}
