package compose

import (
	"errors"
	"fmt"
)

// ErrDataShape matches every *DataShapeError via errors.Is.
var ErrDataShape = errors.New("invalid data shape")

// DataShapeError reports structurally invalid builder input. The composer
// never repairs such input.
type DataShapeError struct {
	Op     string
	Detail string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrDataShape.Error(), e.Detail)
}

func (e *DataShapeError) Is(target error) bool {
	return target == ErrDataShape
}

func shapeErr(op, format string, args ...any) error {
	return &DataShapeError{Op: op, Detail: fmt.Sprintf(format, args...)}
}
