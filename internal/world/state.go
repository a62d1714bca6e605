package world

// State is the persisted form of a world.
type State struct {
	Objects          []*Object `json:"objects"`
	CustomBackground bool      `json:"customBackground"`
	WorldWidth       float64   `json:"worldWidth"`
	WorldHeight      float64   `json:"worldHeight"`
	CameraX          float64   `json:"cameraX"`
	CameraY          float64   `json:"cameraY"`
}

// State captures the world for a snapshot. Objects are deep-copied.
func (w *World) State() State {
	objs := make([]*Object, len(w.objects))
	for i, obj := range w.objects {
		objs[i] = obj.Clone()
	}
	return State{
		Objects:          objs,
		CustomBackground: w.customBG,
		WorldWidth:       w.width,
		WorldHeight:      w.height,
		CameraX:          w.camera.X,
		CameraY:          w.camera.Y,
	}
}

// LoadState replaces the world with a saved one. Missing sizes fall back to
// the defaults and every object is clamped back into bounds.
func (w *World) LoadState(s State) {
	w.width, w.height = s.WorldWidth, s.WorldHeight
	if w.width <= 0 {
		w.width = DefaultWidth
	}
	if w.height <= 0 {
		w.height = DefaultHeight
	}
	w.customBG = s.CustomBackground
	w.camera = Point{X: s.CameraX, Y: s.CameraY}

	w.objects = w.objects[:0]
	for _, obj := range s.Objects {
		if obj == nil || obj.ID == "" {
			continue
		}
		w.AddObject(obj.Clone())
	}
}
