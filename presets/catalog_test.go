package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDeclarationOrder(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	all := reg.All()
	ids := make([]string, len(all))
	for i, p := range all {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"human_arm", "human_leg", "robotic_arm_6dof", "delta_robot", "scara"}, ids)
}

func TestRegistryDOFMatchesChain(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	for _, p := range reg.All() {
		assert.Equal(t, p.DOF, p.Chain.DOF(), "preset %s", p.ID)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	_, err = reg.Get("does-not-exist")
	require.ErrorIs(t, err, ErrUnknownPreset)

	p, err := reg.Get("delta_robot")
	require.NoError(t, err)
	assert.Equal(t, 3, p.DOF)
	assert.Equal(t, "3P", p.JointTypeSummary)
}

func TestAllIsDefensiveCopy(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	all := reg.All()
	all[0] = nil
	all2 := reg.All()
	assert.NotNil(t, all2[0])
}
