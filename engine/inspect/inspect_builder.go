package inspect

// InspectorBuilderOption is a functional option used to configure an Inspector during construction.
type InspectorBuilderOption func(*inspector)

// WithWorkers sets the maximum number of concurrent analysis workers.
// Defaults to one less than the CPU count, minimum 1.
//
// Parameters:
//   - n: the worker count; values below 1 are ignored
//
// Returns:
//   - InspectorBuilderOption: a function that sets the worker count for this inspector
func WithWorkers(n int) InspectorBuilderOption {
	return func(in *inspector) {
		if n >= 1 {
			in.workers = n
		}
	}
}

// WithQueueSize sets the task queue capacity of the worker pool. Defaults to 256.
//
// Parameters:
//   - n: the queue capacity; values below 1 are ignored
//
// Returns:
//   - InspectorBuilderOption: a function that sets the queue size for this inspector
func WithQueueSize(n int) InspectorBuilderOption {
	return func(in *inspector) {
		if n >= 1 {
			in.queueSize = n
		}
	}
}
