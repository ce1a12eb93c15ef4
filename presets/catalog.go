// Package presets holds the immutable, read-only table of built-in chain
// presets. The registry is built once, at process start, by New(); after
// construction it is safe for concurrent readers without synchronization
// since nothing mutates it past that point.
package presets

import (
	"errors"
	"fmt"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/chainmodel"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

// ErrUnknownPreset indicates a requested preset id is not in the registry.
var ErrUnknownPreset = errors.New("presets: unknown chain id")

// Preset describes one named, pre-declared kinematic chain exposed to
// clients via GET /api/v1/kinematics/chains.
type Preset struct {
	ID               string
	Name             string
	DOF              int
	JointTypeSummary string
	Description      string
	Chain            *chainmodel.Chain
}

// Registry is the immutable, declaration-ordered table of built-in presets.
type Registry struct {
	byID  map[string]*Preset
	order []string
}

// New builds the registry of the five built-in presets, in declaration
// order, one constructor function per named preset below.
func New() (*Registry, error) {
	constructors := []func() (*Preset, error){
		humanArm,
		humanLeg,
		roboticArm6DOF,
		deltaRobot,
		scara,
	}

	reg := &Registry{byID: make(map[string]*Preset, len(constructors))}
	for _, build := range constructors {
		p, err := build()
		if err != nil {
			return nil, fmt.Errorf("presets.New: %w", err)
		}
		reg.byID[p.ID] = p
		reg.order = append(reg.order, p.ID)
	}
	return reg, nil
}

// Get looks up a preset by id.
func (r *Registry) Get(id string) (*Preset, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("presets.Get(%q): %w", id, ErrUnknownPreset)
	}
	return p, nil
}

// All returns every preset in declaration order. The returned slice is a
// fresh copy; mutating it does not affect the registry.
func (r *Registry) All() []*Preset {
	out := make([]*Preset, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func revoluteChain(axes []vector3.Vec3, linkLengths []float64, limits []*chainmodel.Limits) (*chainmodel.Chain, error) {
	joints := make([]chainmodel.Joint, len(axes))
	for i := range axes {
		var lim *chainmodel.Limits
		if limits != nil {
			lim = limits[i]
		}
		j, err := chainmodel.NewJoint(chainmodel.Revolute, axes[i], linkLengths[i], lim)
		if err != nil {
			return nil, err
		}
		joints[i] = j
	}
	return chainmodel.NewChain(joints)
}

var (
	axisX = vector3.Must(1, 0, 0)
	axisY = vector3.Must(0, 1, 0)
	axisZ = vector3.Must(0, 0, 1)
)

func pm(lo, hi float64) *chainmodel.Limits { return &chainmodel.Limits{Lo: lo, Hi: hi} }

// humanArm models a 7-DOF anthropomorphic arm: shoulder (3 revolute),
// elbow (1 revolute), wrist (3 revolute).
func humanArm() (*Preset, error) {
	const (
		upperArm   = 0.30
		forearm    = 0.25
		handLength = 0.10
	)
	axes := []vector3.Vec3{axisZ, axisY, axisX, axisY, axisZ, axisY, axisX}
	lengths := []float64{0, 0, upperArm, 0, forearm, 0, handLength}
	limits := []*chainmodel.Limits{
		pm(-3.14, 3.14), pm(-1.57, 3.14), pm(-1.57, 1.57),
		pm(0, 2.62), pm(-3.14, 3.14), pm(-1.22, 1.22), pm(-1.57, 1.57),
	}
	chain, err := revoluteChain(axes, lengths, limits)
	if err != nil {
		return nil, fmt.Errorf("humanArm: %w", err)
	}
	return &Preset{
		ID: "human_arm", Name: "Human Arm", DOF: 7,
		JointTypeSummary: "7R", Chain: chain,
		Description: "Anthropomorphic 7-DOF arm: 3-DOF shoulder, 1-DOF elbow, 3-DOF wrist.",
	}, nil
}

// humanLeg models a 6-DOF leg: hip (3 revolute), knee (1 revolute), ankle
// (2 revolute).
func humanLeg() (*Preset, error) {
	const (
		thigh = 0.45
		shin  = 0.40
		foot  = 0.15
	)
	axes := []vector3.Vec3{axisZ, axisX, axisY, axisY, axisX, axisZ}
	lengths := []float64{0, 0, thigh, shin, 0, foot}
	limits := []*chainmodel.Limits{
		pm(-0.78, 1.22), pm(-0.52, 0.52), pm(-1.75, 0.52),
		pm(0, 2.62), pm(-0.70, 0.35), pm(-0.35, 0.35),
	}
	chain, err := revoluteChain(axes, lengths, limits)
	if err != nil {
		return nil, fmt.Errorf("humanLeg: %w", err)
	}
	return &Preset{
		ID: "human_leg", Name: "Human Leg", DOF: 6,
		JointTypeSummary: "6R", Chain: chain,
		Description: "Anthropomorphic 6-DOF leg: 3-DOF hip, 1-DOF knee, 2-DOF ankle.",
	}, nil
}

// roboticArm6DOF models a generic industrial 6-axis arm.
func roboticArm6DOF() (*Preset, error) {
	const (
		base     = 0.20
		shoulder = 0.35
		elbow    = 0.30
		wrist    = 0.12
	)
	axes := []vector3.Vec3{axisZ, axisY, axisY, axisZ, axisY, axisX}
	lengths := []float64{base, shoulder, elbow, 0, wrist, 0}
	limits := []*chainmodel.Limits{
		pm(-3.05, 3.05), pm(-1.91, 1.91), pm(-2.75, 2.75),
		pm(-3.14, 3.14), pm(-1.91, 1.91), pm(-3.14, 3.14),
	}
	chain, err := revoluteChain(axes, lengths, limits)
	if err != nil {
		return nil, fmt.Errorf("roboticArm6DOF: %w", err)
	}
	return &Preset{
		ID: "robotic_arm_6dof", Name: "Robotic Arm (6-DOF)", DOF: 6,
		JointTypeSummary: "6R", Chain: chain,
		Description: "Generic industrial 6-axis serial manipulator.",
	}, nil
}

// deltaRobot models a 3-DOF parallel delta robot, serial-reduced to 3
// prismatic joints along the three tower axes.
func deltaRobot() (*Preset, error) {
	const armReach = 0.35
	towerA := vector3.Must(1, 0, 0)
	towerB := vector3.Must(-0.5, 0.866025403784, 0)
	towerC := vector3.Must(-0.5, -0.866025403784, 0)

	joints := []chainmodel.Joint{}
	for _, axis := range []vector3.Vec3{towerA, towerB, towerC} {
		j, err := chainmodel.NewJoint(chainmodel.Prismatic, axis, armReach, pm(0, 0.30))
		if err != nil {
			return nil, fmt.Errorf("deltaRobot: %w", err)
		}
		joints = append(joints, j)
	}
	chain, err := chainmodel.NewChain(joints)
	if err != nil {
		return nil, fmt.Errorf("deltaRobot: %w", err)
	}
	return &Preset{
		ID: "delta_robot", Name: "Delta Robot", DOF: 3,
		JointTypeSummary: "3P", Chain: chain,
		Description: "3-DOF parallel delta robot, serial-reduced to three tower-axis prismatic joints.",
	}, nil
}

// scara models a SCARA arm: 2 revolute shoulder/elbow joints, 1 revolute
// wrist-roll joint, and 1 prismatic Z-axis plunge joint.
func scara() (*Preset, error) {
	const (
		link1 = 0.25
		link2 = 0.20
	)
	joints := make([]chainmodel.Joint, 0, 4)
	for i, l := range []struct {
		length float64
		limit  *chainmodel.Limits
	}{
		{link1, pm(-3.05, 3.05)},
		{link2, pm(-2.53, 2.53)},
		{0, pm(-6.28, 6.28)},
	} {
		j, err := chainmodel.NewJoint(chainmodel.Revolute, axisZ, l.length, l.limit)
		if err != nil {
			return nil, fmt.Errorf("scara: revolute %d: %w", i, err)
		}
		joints = append(joints, j)
	}
	plunge, err := chainmodel.NewJoint(chainmodel.Prismatic, axisZ.Neg(), 0, pm(0, 0.15))
	if err != nil {
		return nil, fmt.Errorf("scara: plunge: %w", err)
	}
	joints = append(joints, plunge)

	chain, err := chainmodel.NewChain(joints)
	if err != nil {
		return nil, fmt.Errorf("scara: %w", err)
	}
	return &Preset{
		ID: "scara", Name: "SCARA", DOF: 4,
		JointTypeSummary: "3R1P", Chain: chain,
		Description: "SCARA arm: shoulder and elbow revolute joints, a wrist-roll revolute joint, and a Z-axis prismatic plunge.",
	}, nil
}
