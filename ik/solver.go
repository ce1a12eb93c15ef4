package ik

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/chainmodel"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/fk"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

// Solve runs damped least squares (Levenberg-Marquardt) toward req's target
// pose, falling back to cyclic coordinate descent if damping alone stalls.
// ctx is checked cooperatively once per iteration; a canceled/expired ctx
// ends the solve early with whatever pose is best so far (not an error —
// the caller sees Converged=false and can inspect FinalError).
func Solve(ctx context.Context, req Request) (*Solution, error) {
	chain := req.Chain
	n := chain.DOF()

	if !req.TargetPosition.Finite() {
		return nil, ErrInvalidTarget
	}
	if req.TargetOrientation != nil && !finiteQuat(*req.TargetOrientation) {
		return nil, ErrInvalidTarget
	}

	q := make([]float64, n)
	if req.SeedJointAngles != nil {
		if err := chain.ValidateCoordinates(req.SeedJointAngles); err != nil {
			return nil, fmt.Errorf("ik.Solve: seed: %w", err)
		}
		copy(q, req.SeedJointAngles)
	}

	maxIter := resolveMaxIterations(req.MaxIterations)
	tol, err := resolveTolerance(req.Tolerance)
	if err != nil {
		return nil, err
	}
	useOrientation := req.TargetOrientation != nil

	lambda := lambdaInit
	stall := 0
	usedFallback := false

	bestQ := append([]float64(nil), q...)
	bestErr, err := poseError(chain, q, req.TargetPosition, req.TargetOrientation)
	if err != nil {
		return nil, fmt.Errorf("ik.Solve: %w", err)
	}

	iterations := 0
	for iterations < maxIter {
		if ctx.Err() != nil {
			break
		}
		iterations++

		if usedFallback {
			nextQ, err := ccdSweep(chain, q, req.TargetPosition)
			if err != nil {
				return nil, fmt.Errorf("ik.Solve: %w", err)
			}
			q = nextQ
			errNorm, err := poseError(chain, q, req.TargetPosition, req.TargetOrientation)
			if err != nil {
				return nil, fmt.Errorf("ik.Solve: %w", err)
			}
			if errNorm < bestErr {
				bestErr = errNorm
				bestQ = append([]float64(nil), q...)
			}
			if errNorm <= tol {
				break
			}
			continue
		}

		result, frames, err := fk.EvaluateWithFrames(chain, q)
		if err != nil {
			return nil, fmt.Errorf("ik.Solve: %w", err)
		}
		e := residualVector(result, req.TargetPosition, req.TargetOrientation)
		errNorm := normVec(e)
		if errNorm <= tol {
			bestErr = errNorm
			bestQ = append([]float64(nil), q...)
			break
		}

		jac, err := buildJacobian(chain, frames, result.EndEffectorPosition, useOrientation)
		if err != nil {
			return nil, fmt.Errorf("ik.Solve: %w", err)
		}
		if iterations == 1 && jacobianAllZero(jac) {
			return nil, ErrIrrecoverableSingular
		}

		dq, ok := solveNormalEquations(jac.Rows(), jac.Cols(), jac.Raw(), e, lambda)
		if !ok {
			lambda = minF(lambda*lambdaUp, lambdaMax)
			stall++
		} else {
			trialQ := make([]float64, n)
			for i := range trialQ {
				trialQ[i] = chain.Joints[i].Clamp(q[i] + dq[i])
			}
			trialErr, err := poseError(chain, trialQ, req.TargetPosition, req.TargetOrientation)
			if err != nil {
				return nil, fmt.Errorf("ik.Solve: %w", err)
			}

			if trialErr < errNorm {
				improvement := (errNorm - trialErr) / errNorm
				q = trialQ
				lambda = maxF(lambda*lambdaDown, lambdaMin)
				if trialErr < bestErr {
					bestErr = trialErr
					bestQ = append([]float64(nil), q...)
				}
				if improvement < stallImprovement {
					stall++
				} else {
					stall = 0
				}
			} else {
				lambda = minF(lambda*lambdaUp, lambdaMax)
				stall++
			}
		}

		if stall >= stallLimit && lambda >= lambdaMax {
			usedFallback = true
		}
	}

	jointAngles := make([]float64, n)
	for i, v := range bestQ {
		if chain.Joints[i].Type == chainmodel.Revolute {
			jointAngles[i] = vector3.WrapAngle(v)
		} else {
			jointAngles[i] = v
		}
	}

	return &Solution{
		SolutionID:      uuid.NewString(),
		JointAngles:     jointAngles,
		Converged:       bestErr <= tol,
		Iterations:      iterations,
		FinalError:      bestErr,
		UsedCCDFallback: usedFallback,
	}, nil
}

// poseError evaluates FK at q and returns the norm of the residual against
// the target pose.
func poseError(chain *chainmodel.Chain, q []float64, targetPos vector3.Vec3, targetOrient *vector3.Quat) (float64, error) {
	result, err := fk.Evaluate(chain, q)
	if err != nil {
		return 0, err
	}
	return normVec(residualVector(result, targetPos, targetOrient)), nil
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
