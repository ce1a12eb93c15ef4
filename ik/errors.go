// Package ik implements the damped-least-squares (Levenberg-Marquardt)
// inverse-kinematics solver with a cyclic-coordinate-descent fallback.
package ik

import "errors"

// Sentinel errors for IK validation and solver failure classes. Callers
// MUST use errors.Is to branch on semantics rather than matching error
// strings.
var (
	// ErrInvalidTarget indicates a non-finite target position or
	// orientation quaternion.
	ErrInvalidTarget = errors.New("ik: invalid target")

	// ErrInvalidConstraints indicates the requested tolerance fell below
	// toleranceFloor. Solve does not check MaxIterations against a ceiling.
	ErrInvalidConstraints = errors.New("ik: invalid constraints")

	// ErrIrrecoverableSingular indicates the residual Jacobian at the
	// starting configuration is entirely zero — no joint can move the end
	// effector, so neither damping nor the CCD fallback can make progress.
	// Solve returns it on the first iteration, before either is attempted.
	// This is the engine's one Internal (500) failure mode; every other
	// validation failure is a client error.
	ErrIrrecoverableSingular = errors.New("ik: irrecoverable singular system")
)
