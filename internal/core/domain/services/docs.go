// Package services contains stateless domain services that coordinate
// logic spanning multiple aggregates. RoutePlanner implements the
// auto-assignment engine: it partitions unassigned orders into
// per-shipper routes under capacity, shift-time, zone and priority
// constraints, using a travel matrix supplied by the application layer.
package services
