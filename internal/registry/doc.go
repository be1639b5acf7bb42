// Package registry provides the central table of node definitions.
//
// The Registry maps a stable (name, version) descriptor.Key to the function or
// context descriptor registered under it. It is populated once at startup from
// an explicit, ordered list of candidates (the compiled-in standard
// definitions plus any manifests the user supplies) and is read-only
// afterwards. Keys are unique: a second registration under the same key is
// rejected and leaves the registry untouched.
//
// Presentation metadata is not stored here. RegisterFromCandidates reports each
// successful registration through a callback so a collaborator (see package
// uihints) can index UI strings under the same key.
package registry
