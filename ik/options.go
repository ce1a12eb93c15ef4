package ik

import (
	"fmt"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/chainmodel"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

// Defaults and tuning constants for the damped-least-squares solver.
const (
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-6

	// toleranceFloor is the smallest positive tolerance a caller may
	// request; anything tighter is indistinguishable from floating-point
	// noise in the residual norm and rejected rather than silently spun
	// on until MaxIterations.
	toleranceFloor = 1e-12

	lambdaInit = 0.01
	lambdaMin  = 1e-6
	lambdaMax  = 1.0
	lambdaUp   = 10.0
	lambdaDown = 0.5

	// stallLimit consecutive iterations failing to reduce ||e|| by at
	// least stallImprovement, with lambda already at lambdaMax, triggers
	// the CCD fallback.
	stallLimit        = 5
	stallImprovement  = 0.01
	numericalStepSize = 1e-6
)

// Request is one inverse-kinematics solve request.
type Request struct {
	Chain *chainmodel.Chain

	// SeedJointAngles, if non-nil, must have length Chain.DOF() and is
	// used as the solver's starting point instead of all-zeros.
	SeedJointAngles []float64

	TargetPosition vector3.Vec3

	// TargetOrientation, if non-nil, extends the residual to 6
	// dimensions (position + small-angle orientation error).
	TargetOrientation *vector3.Quat

	// MaxIterations overrides DefaultMaxIterations when positive.
	MaxIterations int

	// Tolerance overrides DefaultTolerance when non-zero; a value below
	// toleranceFloor (including any negative value) is rejected with
	// ErrInvalidConstraints.
	Tolerance float64
}

// Solution is the result of a Solve call.
type Solution struct {
	SolutionID      string
	JointAngles     []float64
	Converged       bool
	Iterations      int
	FinalError      float64
	UsedCCDFallback bool
}

func resolveMaxIterations(n int) int {
	if n > 0 {
		return n
	}
	return DefaultMaxIterations
}

func resolveTolerance(t float64) (float64, error) {
	if t == 0 {
		return DefaultTolerance, nil
	}
	if t < toleranceFloor {
		return 0, fmt.Errorf("ik: tolerance %g below floor %g: %w", t, toleranceFloor, ErrInvalidConstraints)
	}
	return t, nil
}

func finiteQuat(q vector3.Quat) bool {
	_, err := vector3.NewQuat(q.X, q.Y, q.Z, q.W)
	return err == nil
}
