package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithFrameWorkers sets the number of worker goroutines used during the parallel
// model matrix rebuild in PrepareFrame. Defaults to runtime.NumCPU()-1.
// Higher values may improve throughput with many objects; lower values reduce
// scheduling overhead for simple scenes.
//
// Parameters:
//   - n: the number of frame workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFrameWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.frameWorkers = n
	}
}
