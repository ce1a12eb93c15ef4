package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/fk"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/ik"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/intent"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/trajectory"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

func (s *Server) handleSolveIK(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req SolveIKRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, "solve-ik", start, http.StatusBadRequest, fmt.Errorf("decode: %w", err))
		return
	}

	chain, err := resolveIKChain(req, s.presets)
	if err != nil {
		s.fail(w, "solve-ik", start, http.StatusBadRequest, err)
		return
	}
	if chain.DOF() > s.cfg.MaxDOF {
		s.fail(w, "solve-ik", start, http.StatusBadRequest, fmt.Errorf("joint_count %d exceeds max_dof %d", chain.DOF(), s.cfg.MaxDOF))
		return
	}

	solveReq := ik.Request{
		Chain:          chain,
		TargetPosition: vecFromArray(req.TargetPosition),
	}
	if req.TargetOrientation != nil {
		q := quatFromArray(*req.TargetOrientation)
		solveReq.TargetOrientation = &q
	}
	if req.SeedJointAngles != nil {
		solveReq.SeedJointAngles = req.SeedJointAngles
	}
	if req.Constraints != nil {
		solveReq.MaxIterations = req.Constraints.MaxIterations
		solveReq.Tolerance = req.Constraints.Tolerance
	}
	if solveReq.MaxIterations > s.cfg.MaxIterations {
		s.fail(w, "solve-ik", start, http.StatusBadRequest, fmt.Errorf("max_iterations %d exceeds ceiling %d", solveReq.MaxIterations, s.cfg.MaxIterations))
		return
	}

	sol, err := ik.Solve(r.Context(), solveReq)
	if err != nil {
		s.fail(w, "solve-ik", start, statusForError(err), err)
		return
	}

	s.succeed(w, "solve-ik", start, http.StatusOK, SolveIKResponse{
		SolutionID:    sol.SolutionID,
		JointAngles:   sol.JointAngles,
		Converged:     sol.Converged,
		Iterations:    sol.Iterations,
		ErrorDistance: sol.FinalError,
		ElapsedUs:     microsSince(start),
	})
}

func (s *Server) handleSolveFK(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req SolveFKRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, "solve-fk", start, http.StatusBadRequest, fmt.Errorf("decode: %w", err))
		return
	}

	chain, angles, err := resolveFKChainAndAngles(req, s.presets)
	if err != nil {
		s.fail(w, "solve-fk", start, http.StatusBadRequest, err)
		return
	}
	if chain.DOF() > s.cfg.MaxDOF {
		s.fail(w, "solve-fk", start, http.StatusBadRequest, fmt.Errorf("dof %d exceeds max_dof %d", chain.DOF(), s.cfg.MaxDOF))
		return
	}

	result, err := fk.Evaluate(chain, angles)
	if err != nil {
		s.fail(w, "solve-fk", start, http.StatusBadRequest, err)
		return
	}

	jointPositions := make([][3]float64, len(result.JointPositions))
	for i, p := range result.JointPositions {
		jointPositions[i] = arrayFromVec(p)
	}
	o := result.EndEffectorOrientation

	s.succeed(w, "solve-fk", start, http.StatusOK, SolveFKResponse{
		EndEffectorPosition:    arrayFromVec(result.EndEffectorPosition),
		EndEffectorOrientation: [4]float64{o.X, o.Y, o.Z, o.W},
		JointPositions:         jointPositions,
		ElapsedUs:              microsSince(start),
	})
}

func (s *Server) handleCompressIntent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req CompressIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, "compress-intent", start, http.StatusBadRequest, fmt.Errorf("decode: %w", err))
		return
	}
	if len(req.Samples) > s.cfg.MaxSamples {
		s.fail(w, "compress-intent", start, http.StatusBadRequest, fmt.Errorf("samples %d exceeds max_samples %d", len(req.Samples), s.cfg.MaxSamples))
		return
	}

	samples := make([]intent.Sample, len(req.Samples))
	for i, sd := range req.Samples {
		samples[i] = intent.Sample{
			TimestampMs: sd.TimestampMs,
			Position:    vecFromArray(sd.Position),
		}
		if sd.Velocity != nil {
			v := vecFromArray(*sd.Velocity)
			samples[i].Velocity = &v
		}
	}

	rec, _, err := intent.Compress(samples, req.SampleRateHz)
	if err != nil {
		s.fail(w, "compress-intent", start, http.StatusBadRequest, err)
		return
	}

	s.succeed(w, "compress-intent", start, http.StatusOK, CompressIntentResponse{
		IntentID:         rec.IntentID,
		IntentType:       rec.Class.String(),
		Direction:        arrayFromVec(rec.Direction),
		Magnitude:        rec.Magnitude,
		CompressedBytes:  rec.CompressedBytes,
		OriginalSamples:  rec.OriginalSamples,
		CompressionRatio: rec.CompressionRatio,
		ElapsedUs:        microsSince(start),
	})
}

func (s *Server) handleOptimizeTrajectory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req OptimizeTrajectoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, "optimize-trajectory", start, http.StatusBadRequest, fmt.Errorf("decode: %w", err))
		return
	}
	if len(req.Waypoints) > s.cfg.MaxWaypoints {
		s.fail(w, "optimize-trajectory", start, http.StatusBadRequest, fmt.Errorf("waypoints %d exceeds max_waypoints %d", len(req.Waypoints), s.cfg.MaxWaypoints))
		return
	}

	waypoints := make([]vector3.Vec3, len(req.Waypoints))
	for i, w3 := range req.Waypoints {
		waypoints[i] = vecFromArray(w3)
	}

	plan, err := trajectory.Optimize(waypoints, req.MaxVelocity, req.Acceleration)
	if err != nil {
		s.fail(w, "optimize-trajectory", start, http.StatusBadRequest, err)
		return
	}

	s.succeed(w, "optimize-trajectory", start, http.StatusOK, OptimizeTrajectoryResponse{
		TotalDistance:      plan.TotalDistance,
		TotalTime:          plan.TotalTime,
		SegmentTimes:       plan.SegmentTimes,
		MaxVelocityReached: plan.MaxVelocityReached,
		ElapsedUs:          microsSince(start),
	})
}

func (s *Server) handleListChains(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	all := s.presets.All()
	out := make([]ChainPresetDTO, len(all))
	for i, p := range all {
		out[i] = ChainPresetDTO{
			ID:               p.ID,
			Name:             p.Name,
			DOF:              p.DOF,
			JointTypeSummary: p.JointTypeSummary,
			Description:      p.Description,
		}
	}
	s.succeed(w, "chains", start, http.StatusOK, out)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.succeed(w, "stats", start, http.StatusOK, s.stats.Snapshot())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.succeed(w, "health", start, http.StatusOK, s.stats.Health(s.version))
}

// fail writes the JSON error envelope and still records the request in
// apistats — stats counters increment on every response regardless of
// outcome.
func (s *Server) fail(w http.ResponseWriter, route string, start time.Time, status int, err error) {
	s.stats.RecordRequest(route, microsSince(start))
	writeError(w, status, err)
}

func (s *Server) succeed(w http.ResponseWriter, route string, start time.Time, status int, body interface{}) {
	s.stats.RecordRequest(route, microsSince(start))
	writeJSON(w, status, body)
}
