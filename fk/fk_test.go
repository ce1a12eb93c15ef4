package fk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/chainmodel"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

func straightChain(t *testing.T, n int, length float64) *chainmodel.Chain {
	t.Helper()
	chain, _, err := ImplicitChain(make([]float64, n), repeat(length, n))
	require.NoError(t, err)
	return chain
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// TestStraightChainZeroAngles exercises FK over a chain built by
// ImplicitChain with zeroed joint angles, where every link lies flat along X.
func TestStraightChainZeroAngles(t *testing.T) {
	chain := straightChain(t, 5, 0.2)
	result, err := Evaluate(chain, make([]float64, 5))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.EndEffectorPosition.X, 1e-9)
	assert.InDelta(t, 0, result.EndEffectorPosition.Y, 1e-9)
	assert.InDelta(t, 0, result.EndEffectorPosition.Z, 1e-9)

	require.Len(t, result.JointPositions, 6)
	assert.Equal(t, vector3.Zero, result.JointPositions[0])
	assert.InDelta(t, 1.0, result.JointPositions[5].X, 1e-9)
}

func TestEvaluateDeterministic(t *testing.T) {
	chain := straightChain(t, 4, 0.15)
	q := []float64{0.1, -0.2, 0.3, 0.05}

	a, err := Evaluate(chain, q)
	require.NoError(t, err)
	b, err := Evaluate(chain, q)
	require.NoError(t, err)

	assert.Equal(t, a.EndEffectorPosition, b.EndEffectorPosition)
	assert.Equal(t, a.EndEffectorOrientation, b.EndEffectorOrientation)
}

func TestEvaluateRejectsLengthMismatch(t *testing.T) {
	chain := straightChain(t, 3, 0.1)
	_, err := Evaluate(chain, []float64{0, 0})
	require.ErrorIs(t, err, chainmodel.ErrLengthMismatch)
}

func TestImplicitChainRejectsMismatchedArrays(t *testing.T) {
	_, _, err := ImplicitChain([]float64{0, 0}, []float64{0.1})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestAnalyticalVsNumericalJacobian(t *testing.T) {
	chain := straightChain(t, 4, 0.2)
	q := []float64{0.3, -0.4, 0.5, 0.1}

	result, frames, err := EvaluateWithFrames(chain, q)
	require.NoError(t, err)

	for i, joint := range chain.Joints {
		analytical := AnalyticalPositionColumn(joint.Type, frames[i], result.EndEffectorPosition)
		numerical, err := NumericalPositionColumn(chain, q, i, 1e-6)
		require.NoError(t, err)

		assert.InDelta(t, numerical.X, analytical.X, 1e-4)
		assert.InDelta(t, numerical.Y, analytical.Y, 1e-4)
		assert.InDelta(t, numerical.Z, analytical.Z, 1e-4)
	}
}
