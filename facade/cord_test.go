package facade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ob6160/Modeller/core"
)

func TestCordBeadsSpacingAndKnob(t *testing.T) {
	sphere := core.NewSphere(1, 8, 6)
	const radius = 0.03
	beads := CordBeads(1, 10, -6, 2, radius, true, sphere)
	require.NotEmpty(t, beads)

	spacing := float32(radius * 2.2)
	expected := int(2/spacing) + 1 // beads plus the knob
	assert.Len(t, beads, expected)

	for i := 0; i < len(beads)-1; i++ {
		b := beads[i]
		assert.InDelta(t, 10-float64(i)*float64(spacing), float64(b.Position.Y()), 1e-5)
		assert.Equal(t, float32(radius), b.Scale.X())
	}

	knob := beads[len(beads)-1]
	assert.InDelta(t, 10-2, float64(knob.Position.Y()), 1e-5)
	assert.InDelta(t, radius*2.5, float64(knob.Scale.X()), 1e-6)
}

func TestCordBeadsWithoutKnob(t *testing.T) {
	sphere := core.NewSphere(1, 8, 6)
	beads := CordBeads(0, 5, 0, 1, 0.03, false, sphere)
	for _, b := range beads {
		assert.Equal(t, float32(0.03), b.Scale.X())
	}
}

func TestCordBeadsShortLengthStillEmitsOne(t *testing.T) {
	sphere := core.NewSphere(1, 8, 6)
	beads := CordBeads(0, 5, 0, 0.01, 0.03, false, sphere)
	assert.Len(t, beads, 1)
}
