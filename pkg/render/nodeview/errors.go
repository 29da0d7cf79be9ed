package nodeview

import (
	"fmt"

	"github.com/matzehuels/analogue/pkg/errors"
	"github.com/matzehuels/analogue/pkg/render/grid"
)

// InsufficientAreaError is returned by Render when the target area is smaller
// than the node's minimum size in either dimension.
type InsufficientAreaError struct {
	Required grid.Size
	Given    grid.Size
}

func (e *InsufficientAreaError) Error() string {
	return fmt.Sprintf("cannot draw node: area too small: minimum = %s, given = %s", e.Required, e.Given)
}

// Unwrap exposes the error code so errors.Is(err, errors.ErrCodeInsufficientArea)
// holds.
func (e *InsufficientAreaError) Unwrap() error {
	return errors.New(errors.ErrCodeInsufficientArea, "minimum = %s, given = %s", e.Required, e.Given)
}

func errUnbound(op string) error {
	return errors.New(errors.ErrCodeUnboundRenderer, "%s: no node is bound to the renderer", op)
}
