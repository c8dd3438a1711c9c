// Package sim provides the patient-arrival generator for the ED simulator.
//
// # Reading Guide
//
// Start with these files:
//   - patient.go: PatientRecord and the Priority classes
//   - generator.go: one call, one new patient appended to a SimulationState
//   - ranker.go: priority-then-arrival ordering of a finished run
//   - driver.go: the tick loop tying the two together
//
// # Architecture
//
// A run owns exactly one SimulationState. The Driver resets it, then for
// each tick flips a coin (SubsystemArrivalGate) and, on heads, asks the
// Generator (SubsystemPatients) for a new record. Both RNG streams come from
// one PartitionedRNG so a seed fully determines the run. Presentation is
// kept out of this package: callers pass an Observer (see package display).
//
// This is not a queueing model. Records carry a service time, but no server,
// queue delay, or departure is simulated.
//
// Sub-packages:
//   - sim/trace/: per-tick arrival-gate records
package sim
