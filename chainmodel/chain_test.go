package chainmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

func TestNewJointValidation(t *testing.T) {
	_, err := NewJoint(Revolute, vector3.Zero, 0.2, nil)
	require.ErrorIs(t, err, ErrInvalidAxis)

	_, err = NewJoint(Revolute, vector3.Must(0, 0, 1), -0.1, nil)
	require.ErrorIs(t, err, ErrNegativeLinkLength)

	_, err = NewJoint(Revolute, vector3.Must(0, 0, 1), 0.2, &Limits{Lo: 1, Hi: -1})
	require.ErrorIs(t, err, ErrInvalidLimits)

	j, err := NewJoint(Revolute, vector3.Must(0, 0, 2), 0.2, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, j.Axis.Norm(), 1e-12)
}

func TestJointClamp(t *testing.T) {
	j, err := NewJoint(Revolute, vector3.Must(0, 0, 1), 0.2, &Limits{Lo: -1, Hi: 1})
	require.NoError(t, err)
	assert.InDelta(t, 1, j.Clamp(5), 1e-12)
	assert.InDelta(t, -1, j.Clamp(-5), 1e-12)
	assert.InDelta(t, 0.5, j.Clamp(0.5), 1e-12)

	unconstrained, err := NewJoint(Revolute, vector3.Must(0, 0, 1), 0.2, nil)
	require.NoError(t, err)
	assert.InDelta(t, 500, unconstrained.Clamp(500), 1e-12)
}

func TestNewChainValidation(t *testing.T) {
	_, err := NewChain(nil)
	require.ErrorIs(t, err, ErrEmptyChain)

	j, err := NewJoint(Revolute, vector3.Must(0, 0, 1), 0.2, nil)
	require.NoError(t, err)

	tooMany := make([]Joint, MaxDOF+1)
	for i := range tooMany {
		tooMany[i] = j
	}
	_, err = NewChain(tooMany)
	require.ErrorIs(t, err, ErrTooManyDOF)

	c, err := NewChain([]Joint{j, j, j})
	require.NoError(t, err)
	assert.Equal(t, 3, c.DOF())
}

func TestValidateCoordinates(t *testing.T) {
	j, err := NewJoint(Revolute, vector3.Must(0, 0, 1), 0.2, nil)
	require.NoError(t, err)
	c, err := NewChain([]Joint{j, j})
	require.NoError(t, err)

	require.ErrorIs(t, c.ValidateCoordinates([]float64{0}), ErrLengthMismatch)
	require.NoError(t, c.ValidateCoordinates([]float64{0, 0}))
}

func TestChainCloneIsIndependent(t *testing.T) {
	j, err := NewJoint(Revolute, vector3.Must(0, 0, 1), 0.2, nil)
	require.NoError(t, err)
	c, err := NewChain([]Joint{j})
	require.NoError(t, err)

	clone := c.Clone()
	clone.Joints[0].LinkLength = 99
	assert.InDelta(t, 0.2, c.Joints[0].LinkLength, 1e-12)
}
