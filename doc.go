// Package kinematics is the cloud kinematics engine: a stateless HTTP
// service solving inverse kinematics (IK), forward kinematics (FK),
// motion-intent compression, and waypoint trajectory optimization for
// serial robotic chains of up to 64 degrees of freedom.
//
// The engine is organized leaves-first under the module root:
//
//	vector3/    — 3-vector and unit-quaternion arithmetic, Jacobian scratch buffers
//	chainmodel/ — joint/chain data model shared by the FK evaluator and IK solver
//	presets/    — the five built-in chain presets (human_arm, human_leg, ...)
//	fk/         — forward-kinematics evaluator and analytical/numerical Jacobians
//	ik/         — damped-least-squares IK solver with a CCD fallback
//	intent/     — motion-sample classifier and 8-byte wire codec
//	trajectory/ — piecewise-linear waypoint velocity profiler
//	apistats/   — process-lifetime atomic request counters and uptime
//	config/     — environment-variable process configuration
//	httpapi/    — chi-routed HTTP dispatcher binding the above to the wire contract
//	cmd/kinematics-server/ — the service's single entry point
//
// Every solver package is a pure function over its inputs: no I/O, no
// package-level mutable state, and no logging. Only httpapi and
// cmd/kinematics-server perform I/O or hold shared state (the preset
// registry and the stats counters), both safe for concurrent use without
// additional locking once constructed.
package kinematics
