// Package nbody advances a fixed set of point masses under pairwise
// Newtonian gravity.
//
// [Integrator.Step] is a semi-implicit Euler update whose pairwise
// traversal order (ascending i, ascending j > i, position of i updated
// right after its inner loop) is part of its contract: two runs over the
// same initial bodies produce bit-identical trajectories.
//
// # Collisions and singular forces
//
// Bodies are never merged or bounced. A pair whose centres come closer
// than the sum of their radii is reported to the [Reporter] once when the
// contact begins. A pair at zero separation, or whose impulse overflows,
// is skipped for that step and reported as a [Singularity] so that no
// NaN or Inf reaches the stored state.
//
// # Thread Safety
//
// Integrator is NOT thread-safe and Step mutates bodies in place. Readers
// of the body slice must not run concurrently with Step; see sim.Simulator.
package nbody
