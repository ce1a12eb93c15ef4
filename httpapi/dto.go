// Package httpapi binds the fk/ik/intent/trajectory/presets/apistats
// packages to a JSON/HTTP contract built on github.com/go-chi/chi/v5.
package httpapi

import "github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"

func vecFromArray(a [3]float64) vector3.Vec3 {
	return vector3.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func arrayFromVec(v vector3.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// JointDTO is the wire form of a chainmodel.Joint.
type JointDTO struct {
	Type       string     `json:"type"`
	Axis       [3]float64 `json:"axis"`
	LinkLength float64    `json:"link_length"`
	Limits     *[2]float64 `json:"limits,omitempty"`
}

// ChainDTO is the wire form of an explicit chainmodel.Chain.
type ChainDTO struct {
	Joints []JointDTO `json:"joints"`
}

// ConstraintsDTO carries the IK solver's optional iteration/tolerance
// overrides.
type ConstraintsDTO struct {
	MaxIterations int     `json:"max_iterations,omitempty"`
	Tolerance     float64 `json:"tolerance,omitempty"`
}

// SolveIKRequest is the request body for POST /api/v1/kinematics/solve-ik.
// Exactly one of ChainID, Chain, or JointCount must identify the chain to
// solve over.
type SolveIKRequest struct {
	ChainID           string          `json:"chain_id,omitempty"`
	Chain             *ChainDTO       `json:"chain,omitempty"`
	JointCount        int             `json:"joint_count,omitempty"`
	TargetPosition    [3]float64      `json:"target_position"`
	TargetOrientation *[4]float64     `json:"target_orientation,omitempty"`
	SeedJointAngles   []float64       `json:"seed_joint_angles,omitempty"`
	Constraints       *ConstraintsDTO `json:"constraints,omitempty"`
}

// SolveIKResponse is the response body for POST /api/v1/kinematics/solve-ik.
type SolveIKResponse struct {
	SolutionID    string    `json:"solution_id"`
	JointAngles   []float64 `json:"joint_angles"`
	Converged     bool      `json:"converged"`
	Iterations    int       `json:"iterations"`
	ErrorDistance float64   `json:"error_distance"`
	ElapsedUs     int64     `json:"elapsed_us"`
}

// SolveFKRequest is the request body for POST /api/v1/kinematics/solve-fk.
// Exactly one of ChainID, Chain, or (JointAngles + LinkLengths) must
// identify the chain and coordinates to evaluate.
type SolveFKRequest struct {
	ChainID     string     `json:"chain_id,omitempty"`
	Chain       *ChainDTO  `json:"chain,omitempty"`
	JointAngles []float64  `json:"joint_angles"`
	LinkLengths []float64  `json:"link_lengths,omitempty"`
}

// SolveFKResponse is the response body for POST /api/v1/kinematics/solve-fk.
type SolveFKResponse struct {
	EndEffectorPosition    [3]float64   `json:"end_effector_position"`
	EndEffectorOrientation [4]float64   `json:"end_effector_orientation"`
	JointPositions         [][3]float64 `json:"joint_positions"`
	ElapsedUs              int64        `json:"elapsed_us"`
}

// SampleDTO is the wire form of an intent.Sample.
type SampleDTO struct {
	TimestampMs int64      `json:"timestamp_ms"`
	Position    [3]float64 `json:"position"`
	Velocity    *[3]float64 `json:"velocity,omitempty"`
}

// CompressIntentRequest is the request body for
// POST /api/v1/kinematics/compress-intent.
type CompressIntentRequest struct {
	Samples      []SampleDTO `json:"samples"`
	SampleRateHz float64     `json:"sample_rate_hz"`
}

// CompressIntentResponse is the response body for
// POST /api/v1/kinematics/compress-intent.
type CompressIntentResponse struct {
	IntentID         string     `json:"intent_id"`
	IntentType       string     `json:"intent_type"`
	Direction        [3]float64 `json:"direction"`
	Magnitude        float64    `json:"magnitude"`
	CompressedBytes  int        `json:"compressed_bytes"`
	OriginalSamples  int        `json:"original_samples"`
	CompressionRatio float64    `json:"compression_ratio"`
	ElapsedUs        int64      `json:"elapsed_us"`
}

// OptimizeTrajectoryRequest is the request body for
// POST /api/v1/kinematics/optimize-trajectory.
type OptimizeTrajectoryRequest struct {
	Waypoints    [][3]float64 `json:"waypoints"`
	MaxVelocity  float64      `json:"max_velocity,omitempty"`
	Acceleration float64      `json:"acceleration,omitempty"`
}

// OptimizeTrajectoryResponse is the response body for
// POST /api/v1/kinematics/optimize-trajectory.
type OptimizeTrajectoryResponse struct {
	TotalDistance      float64   `json:"total_distance"`
	TotalTime          float64   `json:"total_time"`
	SegmentTimes       []float64 `json:"segment_times"`
	MaxVelocityReached float64   `json:"max_velocity_reached"`
	ElapsedUs          int64     `json:"elapsed_us"`
}

// ChainPresetDTO is one entry of the GET /api/v1/kinematics/chains response.
type ChainPresetDTO struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DOF              int    `json:"dof"`
	JointTypeSummary string `json:"joint_type_summary"`
	Description      string `json:"description"`
}

// errorEnvelope is the JSON shape of every non-2xx response body.
type errorEnvelope struct {
	Error string `json:"error"`
}
