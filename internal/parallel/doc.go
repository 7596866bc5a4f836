// Package parallel runs independent rendering work on a pool of goroutines.
//
// Rendering splits its output into horizontal bands of BandHeight rows. Each
// band is drawn on its own with private blur state, so bands can be handed
// to a WorkerPool and drawn concurrently.
package parallel
