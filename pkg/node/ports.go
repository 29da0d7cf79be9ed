package node

import "slices"

// Slot indexes a non-primary input or output sequence.
type Slot int

// PrimarySlot refers to the primary port of a side.
const PrimarySlot Slot = -1

// PortConfiguration is the set of ports of a node and the strategy used to
// arrange them. The zero value is an empty, inline configuration.
type PortConfiguration struct {
	primaryInput  *Port
	primaryOutput *Port
	inputs        []Port
	outputs       []Port
	strategy      Strategy
}

// NewPortConfiguration creates an inline configuration with the given
// non-primary inputs and outputs.
func NewPortConfiguration(inputs, outputs []Port) PortConfiguration {
	return PortConfiguration{
		inputs:  slices.Clone(inputs),
		outputs: slices.Clone(outputs),
	}
}

// =============================================================================
// Primaries
// =============================================================================

// PrimaryInput returns the primary input, if any.
func (c *PortConfiguration) PrimaryInput() (Port, bool) {
	if c.primaryInput == nil {
		return Port{}, false
	}
	return *c.primaryInput, true
}

// SetPrimaryInput replaces the primary input.
func (c *PortConfiguration) SetPrimaryInput(p Port) { c.primaryInput = &p }

// RemovePrimaryInput clears the primary input.
func (c *PortConfiguration) RemovePrimaryInput() { c.primaryInput = nil }

// PrimaryOutput returns the primary output, if any.
func (c *PortConfiguration) PrimaryOutput() (Port, bool) {
	if c.primaryOutput == nil {
		return Port{}, false
	}
	return *c.primaryOutput, true
}

// SetPrimaryOutput replaces the primary output.
func (c *PortConfiguration) SetPrimaryOutput(p Port) { c.primaryOutput = &p }

// RemovePrimaryOutput clears the primary output.
func (c *PortConfiguration) RemovePrimaryOutput() { c.primaryOutput = nil }

// HasPrimaryInput reports whether a primary input is present.
func (c *PortConfiguration) HasPrimaryInput() bool { return c.primaryInput != nil }

// HasPrimaryOutput reports whether a primary output is present.
func (c *PortConfiguration) HasPrimaryOutput() bool { return c.primaryOutput != nil }

// =============================================================================
// Sequences
// =============================================================================

// AddInput appends a non-primary input; its slot is the previous input count.
func (c *PortConfiguration) AddInput(p Port) { c.inputs = append(c.inputs, p) }

// AddOutput appends a non-primary output; its slot is the previous output count.
func (c *PortConfiguration) AddOutput(p Port) { c.outputs = append(c.outputs, p) }

// Inputs returns a copy of the non-primary inputs in slot order.
func (c *PortConfiguration) Inputs() []Port { return slices.Clone(c.inputs) }

// Outputs returns a copy of the non-primary outputs in slot order.
func (c *PortConfiguration) Outputs() []Port { return slices.Clone(c.outputs) }

// Input returns the input in the given slot.
func (c *PortConfiguration) Input(s Slot) (Port, bool) {
	if s == PrimarySlot {
		return c.PrimaryInput()
	}
	if s < 0 || int(s) >= len(c.inputs) {
		return Port{}, false
	}
	return c.inputs[s], true
}

// Output returns the output in the given slot.
func (c *PortConfiguration) Output(s Slot) (Port, bool) {
	if s == PrimarySlot {
		return c.PrimaryOutput()
	}
	if s < 0 || int(s) >= len(c.outputs) {
		return Port{}, false
	}
	return c.outputs[s], true
}

// InputCount returns the number of non-primary inputs.
func (c *PortConfiguration) InputCount() int { return len(c.inputs) }

// OutputCount returns the number of non-primary outputs.
func (c *PortConfiguration) OutputCount() int { return len(c.outputs) }

// Strategy returns the rendering strategy.
func (c *PortConfiguration) Strategy() Strategy { return c.strategy }

// SetStrategy changes the rendering strategy.
func (c *PortConfiguration) SetStrategy(s Strategy) { c.strategy = s }

// =============================================================================
// States
// =============================================================================

// IsEmpty reports whether the configuration has no ports at all.
func (c *PortConfiguration) IsEmpty() bool {
	return c.primaryInput == nil && c.primaryOutput == nil &&
		len(c.inputs) == 0 && len(c.outputs) == 0
}

// IsOnlyPrimaries reports whether at least one primary exists and there are no
// other ports.
func (c *PortConfiguration) IsOnlyPrimaries() bool {
	return (c.primaryInput != nil || c.primaryOutput != nil) &&
		len(c.inputs) == 0 && len(c.outputs) == 0
}

// IsNotOnlyPrimaries reports whether any non-primary port exists.
func (c *PortConfiguration) IsNotOnlyPrimaries() bool {
	return len(c.inputs) > 0 || len(c.outputs) > 0
}

// =============================================================================
// Geometry
// =============================================================================

// RowForSlot returns the row, relative to the node's top border, of the port
// on the given side and slot. Non-primary rows start below the top border,
// the name row and the separator.
func (c *PortConfiguration) RowForSlot(slot Slot, isOutput bool) int {
	if slot == PrimarySlot {
		return NameRow
	}

	s := int(slot)
	switch c.strategy {
	case InputsFirst:
		if isOutput {
			return MinimumNodeHeight + len(c.inputs) + s
		}
	case OutputsFirst:
		if !isOutput {
			return MinimumNodeHeight + len(c.outputs) + s
		}
	}
	return MinimumNodeHeight + s
}

// Layers returns the number of rows taken by non-primary ports.
func (c *PortConfiguration) Layers() int {
	if c.strategy == Inline {
		return max(len(c.inputs), len(c.outputs))
	}
	return len(c.inputs) + len(c.outputs)
}

// Equal reports whether two configurations hold the same ports and strategy.
func (c *PortConfiguration) Equal(o *PortConfiguration) bool {
	return c.strategy == o.strategy &&
		equalPrimary(c.primaryInput, o.primaryInput) &&
		equalPrimary(c.primaryOutput, o.primaryOutput) &&
		slices.Equal(c.inputs, o.inputs) &&
		slices.Equal(c.outputs, o.outputs)
}

// Clone returns a deep copy of the configuration.
func (c *PortConfiguration) Clone() PortConfiguration {
	out := PortConfiguration{
		inputs:   slices.Clone(c.inputs),
		outputs:  slices.Clone(c.outputs),
		strategy: c.strategy,
	}
	if c.primaryInput != nil {
		out.SetPrimaryInput(*c.primaryInput)
	}
	if c.primaryOutput != nil {
		out.SetPrimaryOutput(*c.primaryOutput)
	}
	return out
}

func equalPrimary(a, b *Port) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
