package vector3

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates a Jacobian was constructed with a
// non-positive row or column count.
var ErrInvalidDimensions = errors.New("vector3: jacobian dimensions must be > 0")

// ErrIndexOutOfBounds indicates a row or column index fell outside the
// Jacobian's allocated range.
var ErrIndexOutOfBounds = errors.New("vector3: jacobian index out of bounds")

// Jacobian is a row-major scratch buffer for the IK solver's residual
// Jacobian (3xN for position-only targets, 6xN when orientation is
// included). It is request-local: the IK solver allocates a fresh one on
// each iteration and never shares it across goroutines.
//
// Storage is a flat []float64 of length rows*cols in row-major order, the
// layout gonum's mat.NewDense takes for the solve.
type Jacobian struct {
	rows, cols int
	data       []float64
}

// NewJacobian allocates a zeroed rows x cols Jacobian.
// Complexity: O(rows*cols) time and memory.
func NewJacobian(rows, cols int) (*Jacobian, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Jacobian{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count.
func (j *Jacobian) Rows() int { return j.rows }

// Cols returns the column count.
func (j *Jacobian) Cols() int { return j.cols }

func (j *Jacobian) index(row, col int) (int, error) {
	if row < 0 || row >= j.rows {
		return 0, fmt.Errorf("Jacobian.At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= j.cols {
		return 0, fmt.Errorf("Jacobian.At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	return row*j.cols + col, nil
}

// At returns the element at (row, col).
func (j *Jacobian) At(row, col int) (float64, error) {
	idx, err := j.index(row, col)
	if err != nil {
		return 0, err
	}
	return j.data[idx], nil
}

// Set writes the element at (row, col).
func (j *Jacobian) Set(row, col int, value float64) error {
	idx, err := j.index(row, col)
	if err != nil {
		return err
	}
	j.data[idx] = value
	return nil
}

// SetColumn3 writes a Vec3 into rows [0,3) of column col — the common case
// of one linear-velocity Jacobian column per joint.
func (j *Jacobian) SetColumn3(col int, v Vec3) error {
	if j.rows < 3 {
		return fmt.Errorf("Jacobian.SetColumn3(%d): %w", col, ErrInvalidDimensions)
	}
	if err := j.Set(0, col, v.X); err != nil {
		return err
	}
	if err := j.Set(1, col, v.Y); err != nil {
		return err
	}
	return j.Set(2, col, v.Z)
}

// SetColumnOrientation3 writes a Vec3 into rows [3,6) of column col — the
// small-angle orientation residual sensitivity appended when an orientation
// target is supplied.
func (j *Jacobian) SetColumnOrientation3(col int, v Vec3) error {
	if j.rows < 6 {
		return fmt.Errorf("Jacobian.SetColumnOrientation3(%d): %w", col, ErrInvalidDimensions)
	}
	if err := j.Set(3, col, v.X); err != nil {
		return err
	}
	if err := j.Set(4, col, v.Y); err != nil {
		return err
	}
	return j.Set(5, col, v.Z)
}

// Raw returns the flat row-major backing slice itself, not a copy.
func (j *Jacobian) Raw() []float64 { return j.data }

// Zero resets every element to 0, for reuse across solver iterations without
// reallocating.
func (j *Jacobian) Zero() {
	for i := range j.data {
		j.data[i] = 0
	}
}
