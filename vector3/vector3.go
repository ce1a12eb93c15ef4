// Package vector3 provides fixed-size 3-vector and unit-quaternion arithmetic
// used throughout the kinematics engine: positions, velocities, axes, and
// end-effector orientation.
//
// All constructors validate their inputs are finite; arithmetic methods never
// themselves fail (they operate on already-validated values), keeping the
// hot FK/IK loops allocation-free and branch-light.
package vector3

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite indicates a component was NaN or +/-Inf where a finite real
// number was required.
var ErrNonFinite = errors.New("vector3: non-finite component")

// ErrZeroNorm indicates an operation (e.g. Normalized) was attempted on a
// vector or quaternion whose norm is zero or numerically indistinguishable
// from zero.
var ErrZeroNorm = errors.New("vector3: zero-norm vector")

// epsNorm is the threshold below which a norm is treated as zero.
const epsNorm = 1e-12

// Vec3 is a 3-component real vector: a position (meters), a velocity (m/s),
// or a direction/axis.
type Vec3 struct {
	X, Y, Z float64
}

// Zero is the additive identity vector.
var Zero = Vec3{0, 0, 0}

// New builds a Vec3, rejecting non-finite components.
// Complexity: O(1).
func New(x, y, z float64) (Vec3, error) {
	if !finite3(x, y, z) {
		return Vec3{}, fmt.Errorf("vector3.New(%g,%g,%g): %w", x, y, z, ErrNonFinite)
	}
	return Vec3{X: x, Y: y, Z: z}, nil
}

// Must is New but panics on error; reserved for package-internal constants
// and tests, never for decoding untrusted request data.
func Must(x, y, z float64) Vec3 {
	v, err := New(x, y, z)
	if err != nil {
		panic(err)
	}
	return v
}

func finite3(x, y, z float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) &&
		!math.IsNaN(y) && !math.IsInf(y, 0) &&
		!math.IsNaN(z) && !math.IsInf(z, 0)
}

// Finite reports whether all three components of v are finite.
// Complexity: O(1).
func (v Vec3) Finite() bool {
	return finite3(v.X, v.Y, v.Z)
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns the additive inverse of v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the scalar (inner) product v . o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length, or ErrZeroNorm if v is (near)
// the zero vector.
func (v Vec3) Normalized() (Vec3, error) {
	n := v.Norm()
	if n < epsNorm {
		return Vec3{}, ErrZeroNorm
	}
	return v.Scale(1.0 / n), nil
}

// NormalizedOrZero is Normalized but returns the zero vector instead of an
// error when the norm is (near) zero, for callers that treat "no direction"
// as a valid outcome rather than a failure (e.g. a motion sample with no net
// displacement).
func (v Vec3) NormalizedOrZero() Vec3 {
	n := v.Norm()
	if n < 1e-9 {
		return Vec3{}
	}
	return v.Scale(1.0 / n)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Norm()
}

// Quat is a unit quaternion (x, y, z, w) representing a 3-D rotation.
// Identity is (0,0,0,1).
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity is the rotation-free quaternion.
var QuatIdentity = Quat{0, 0, 0, 1}

// NewQuat builds a Quat from raw components, rejecting non-finite input.
// The result is NOT normalized; call Normalized to obtain a unit quaternion.
func NewQuat(x, y, z, w float64) (Quat, error) {
	if !finite4(x, y, z, w) {
		return Quat{}, fmt.Errorf("vector3.NewQuat(%g,%g,%g,%g): %w", x, y, z, w, ErrNonFinite)
	}
	return Quat{X: x, Y: y, Z: z, W: w}, nil
}

func finite4(x, y, z, w float64) bool {
	return finite3(x, y, z) && !math.IsNaN(w) && !math.IsInf(w, 0)
}

// Norm returns the quaternion's Euclidean norm.
func (q Quat) Norm() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalized returns q scaled to unit norm, or ErrZeroNorm.
func (q Quat) Normalized() (Quat, error) {
	n := q.Norm()
	if n < epsNorm {
		return Quat{}, ErrZeroNorm
	}
	inv := 1.0 / n
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}, nil
}

// Mul returns the Hamilton product q*o (apply o first, then q).
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Conj returns the conjugate of q (inverse, for unit quaternions).
func (q Quat) Conj() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// FromAxisAngle builds a unit quaternion rotating by angle (radians) about
// axis. axis need not be pre-normalized; it is normalized internally.
// Returns ErrZeroNorm if axis is the zero vector.
func FromAxisAngle(axis Vec3, angle float64) (Quat, error) {
	u, err := axis.Normalized()
	if err != nil {
		return Quat{}, err
	}
	half := angle * 0.5
	s := math.Sin(half)
	return Quat{X: u.X * s, Y: u.Y * s, Z: u.Z * s, W: math.Cos(half)}, nil
}

// Rotate applies q's rotation to point p (q assumed unit norm).
func (q Quat) Rotate(p Vec3) Vec3 {
	// sandwich product q * (0,p) * q^-1, expanded in place so no pure
	// quaternion is allocated in this hot path.
	uX, uY, uZ, uW := q.X, q.Y, q.Z, q.W
	// t = 2 * cross(u, p)
	tX := 2 * (uY*p.Z - uZ*p.Y)
	tY := 2 * (uZ*p.X - uX*p.Z)
	tZ := 2 * (uX*p.Y - uY*p.X)
	// p' = p + w*t + cross(u, t)
	return Vec3{
		X: p.X + uW*tX + (uY*tZ - uZ*tY),
		Y: p.Y + uW*tY + (uZ*tX - uX*tZ),
		Z: p.Z + uW*tZ + (uX*tY - uY*tX),
	}
}

// WrapAngle wraps a radian angle into (-pi, pi], the canonical range used
// when reporting revolute joint coordinates.
func WrapAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a+math.Pi, twoPi)
	if a <= 0 {
		a += twoPi
	}
	return a - math.Pi
}
