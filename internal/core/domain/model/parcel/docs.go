// Package parcel implements the Parcel aggregate and its lifecycle state
// machine. The machine is modeled as a flat transition table (status,
// event) -> status with a pure Transition function, keeping the full set
// of legal moves inspectable and testable as data. The aggregate holds no
// side effects: persisting status changes and publishing lifecycle events
// belong to the application layer.
package parcel
