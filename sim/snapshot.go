package sim

import (
	"time"

	"github.com/lixenwraith/cosmos/vmath"
)

// BodyState is the published position of one body
type BodyState struct {
	Name     string     `json:"name"`
	Position [3]float64 `json:"position"`
	Angle    float64    `json:"angle"`
}

// CameraState is the published camera pose
type CameraState struct {
	Position [3]float64 `json:"position"`
	Target   [3]float64 `json:"target"`
	Distance float64    `json:"distance"`
	State    string     `json:"state"`
}

// Snapshot is an immutable copy of simulation state for readers on other goroutines
type Snapshot struct {
	Frame   uint64      `json:"frame"`
	Time    time.Time   `json:"time"`
	Ready   bool        `json:"ready"`
	Toggles Toggles     `json:"toggles"`
	Camera  CameraState `json:"camera"`
	Bodies  []BodyState `json:"bodies"`
	Focused string      `json:"focused,omitempty"`
}

func triple(v vmath.Vec3F) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
