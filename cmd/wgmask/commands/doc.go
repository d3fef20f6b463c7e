// Package commands defines the wgmask CLI.
//
// Commands
//
//   - ring            All-pass ring with a circular racetrack
//   - euler-ring      All-pass ring with an Euler racetrack
//   - adiabatic-ring  All-pass ring with an adiabatic Euler racetrack
//   - grating         Grating couplers (periodic, arc or fan)
//
// Every command builds its devices into an in-memory layout and prints a
// report of the resulting cells: shapes per layer and bounding box.
// Tracing goes to stderr, at the level given by --trace.
package commands
