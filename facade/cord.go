package facade

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/ob6160/Modeller/core"
)

// CordBeads builds a blinds pull cord as a chain of sphere beads from
// topY down to topY-length, optionally ending in a larger knob. The
// sphere mesh is expected to be unit radius and is shared by every
// bead.
func CordBeads(topX, topY, topZ, length, radius float32, knob bool, sphere *core.Mesh) []*core.Object {
	beadColor := mgl32.Vec3{0.85, 0.83, 0.78}

	// Slight gap between beads.
	spacing := radius * 2.2
	beadCount := int(length / spacing)
	if beadCount < 1 {
		beadCount = 1
	}

	bead := func(y, r float32) *core.Object {
		obj := core.NewObject(sphere, mgl32.Vec3{topX, y, topZ}, beadColor)
		obj.Scale = mgl32.Vec3{r, r, r}
		obj.Shininess = 10
		return obj
	}

	objects := make([]*core.Object, 0, beadCount+1)
	for i := 0; i < beadCount; i++ {
		objects = append(objects, bead(topY-float32(i)*spacing, radius))
	}
	if knob {
		objects = append(objects, bead(topY-length, radius*2.5))
	}
	return objects
}
