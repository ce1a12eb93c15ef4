package ik

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/chainmodel"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/fk"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

func straightChain(t *testing.T, n int, length float64) *chainmodel.Chain {
	t.Helper()
	joints := make([]chainmodel.Joint, n)
	for i := range joints {
		axis := vector3.Must(0, 1, 0)
		if i == 0 {
			axis = vector3.Must(0, 0, 1)
		}
		j, err := chainmodel.NewJoint(chainmodel.Revolute, axis, length, nil)
		require.NoError(t, err)
		joints[i] = j
	}
	chain, err := chainmodel.NewChain(joints)
	require.NoError(t, err)
	return chain
}

func TestSolveReachesKnownTarget(t *testing.T) {
	chain := straightChain(t, 4, 0.2)
	seedQ := []float64{0.3, -0.5, 0.7, 0.2}
	want, err := fk.Evaluate(chain, seedQ)
	require.NoError(t, err)

	sol, err := Solve(context.Background(), Request{
		Chain:          chain,
		TargetPosition: want.EndEffectorPosition,
	})
	require.NoError(t, err)
	assert.True(t, sol.Converged, "final error %g", sol.FinalError)
	assert.NotEmpty(t, sol.SolutionID)

	got, err := fk.Evaluate(chain, sol.JointAngles)
	require.NoError(t, err)
	assert.InDelta(t, want.EndEffectorPosition.X, got.EndEffectorPosition.X, 1e-4)
	assert.InDelta(t, want.EndEffectorPosition.Y, got.EndEffectorPosition.Y, 1e-4)
	assert.InDelta(t, want.EndEffectorPosition.Z, got.EndEffectorPosition.Z, 1e-4)
}

func TestSolveUnreachableTargetDoesNotConverge(t *testing.T) {
	chain := straightChain(t, 2, 0.1)
	sol, err := Solve(context.Background(), Request{
		Chain:          chain,
		TargetPosition: vector3.Must(100, 100, 100),
		MaxIterations:  30,
	})
	require.NoError(t, err)
	assert.False(t, sol.Converged)
}

func TestSolveRejectsInvalidTarget(t *testing.T) {
	chain := straightChain(t, 2, 0.1)
	_, err := Solve(context.Background(), Request{
		Chain:          chain,
		TargetPosition: vector3.Vec3{X: math.NaN()},
	})
	require.ErrorIs(t, err, ErrInvalidTarget)
}

func TestSolveRejectsMismatchedSeed(t *testing.T) {
	chain := straightChain(t, 3, 0.1)
	_, err := Solve(context.Background(), Request{
		Chain:           chain,
		TargetPosition:  vector3.Must(0.1, 0, 0),
		SeedJointAngles: []float64{0, 0},
	})
	require.Error(t, err)
}

func TestSolveRejectsSubFloorTolerance(t *testing.T) {
	chain := straightChain(t, 2, 0.1)
	_, err := Solve(context.Background(), Request{
		Chain:          chain,
		TargetPosition: vector3.Must(0.1, 0, 0),
		Tolerance:      1e-20,
	})
	require.ErrorIs(t, err, ErrInvalidConstraints)
}

func TestSolveRespectsCanceledContext(t *testing.T) {
	chain := straightChain(t, 3, 0.2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, err := Solve(ctx, Request{
		Chain:          chain,
		TargetPosition: vector3.Must(0.5, 0, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, sol.Iterations)
}
