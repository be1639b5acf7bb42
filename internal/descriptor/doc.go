// Package descriptor defines the data records held by the registry: the
// (name, version) Key, shader function descriptors with their ordered
// parameters, context descriptors, and the UI metadata that travels beside
// them.
//
// Descriptors are plain data. They carry no behavior beyond validation and
// rendering of a function body, so the registry can treat every kind
// uniformly.
package descriptor
