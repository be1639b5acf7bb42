// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines FunctionDescriptor, the registry record for a shader
// function node, and its ordered parameter list.
//
// The body is a short C-like snippet (e.g. `Out = A + B;`) kept as text. The
// registry only checks that every name it touches is a declared parameter;
// Render re-binds those names for a code generator.

package descriptor

import (
	"fmt"
	"strings"
)

// ParameterDescriptor describes a single port of a function.
type ParameterDescriptor struct {
	Name      string
	Type      TypeTag
	Direction Direction

	// Default is an optional value vector used when the port is left
	// unconnected. It is nil when the parameter has no default.
	Default []float64
}

// NewParameter creates a parameter. Any trailing values become its default.
func NewParameter(name string, typ TypeTag, dir Direction, defaults ...float64) ParameterDescriptor {
	p := ParameterDescriptor{Name: name, Type: typ, Direction: dir}
	if len(defaults) > 0 {
		p.Default = append([]float64(nil), defaults...)
	}
	return p
}

// FunctionDescriptor is the registry record for a shader function node.
type FunctionDescriptor struct {
	Version    int
	Name       string
	Body       string
	Parameters []ParameterDescriptor
}

// NewFunction creates a function descriptor with parameters in declaration order.
func NewFunction(version int, name, body string, params ...ParameterDescriptor) *FunctionDescriptor {
	return &FunctionDescriptor{
		Version:    version,
		Name:       name,
		Body:       body,
		Parameters: params,
	}
}

// Key implements Descriptor.
func (f *FunctionDescriptor) Key() Key { return NewKey(f.Name, f.Version) }

// Kind implements Descriptor.
func (f *FunctionDescriptor) Kind() Kind { return KindFunction }

// Parameter returns the parameter with the given name.
func (f *FunctionDescriptor) Parameter(name string) (ParameterDescriptor, bool) {
	for _, p := range f.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return ParameterDescriptor{}, false
}

// Inputs returns the In parameters in declaration order.
func (f *FunctionDescriptor) Inputs() []ParameterDescriptor {
	return f.filter(In)
}

// Outputs returns the Out parameters in declaration order.
func (f *FunctionDescriptor) Outputs() []ParameterDescriptor {
	return f.filter(Out)
}

func (f *FunctionDescriptor) filter(dir Direction) []ParameterDescriptor {
	var out []ParameterDescriptor
	for _, p := range f.Parameters {
		if p.Direction == dir {
			out = append(out, p)
		}
	}
	return out
}

// References returns the distinct variable names the body reads or writes, in
// order of first appearance.
func (f *FunctionDescriptor) References() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, tok := range scanBody(f.Body) {
		if !tok.ref {
			continue
		}
		if _, ok := seen[tok.text]; ok {
			continue
		}
		seen[tok.text] = struct{}{}
		names = append(names, tok.text)
	}
	return names
}

// Validate checks that the descriptor is well formed: it has a name and a
// positive version, parameter names are unique, defaults fit their type, and
// every name referenced by the body is a declared parameter.
func (f *FunctionDescriptor) Validate() error {
	var errs []string

	if f.Name == "" {
		errs = append(errs, "name cannot be empty")
	}
	if f.Version <= 0 {
		errs = append(errs, fmt.Sprintf("version must be positive, got %d", f.Version))
	}

	declared := make(map[string]struct{}, len(f.Parameters))
	for _, p := range f.Parameters {
		if p.Name == "" {
			errs = append(errs, "parameter name cannot be empty")
			continue
		}
		if _, exists := declared[p.Name]; exists {
			errs = append(errs, fmt.Sprintf("parameter '%s' is declared more than once", p.Name))
			continue
		}
		declared[p.Name] = struct{}{}

		limit, ok := maxComponents[p.Type]
		if !ok {
			errs = append(errs, fmt.Sprintf("parameter '%s' has unsupported type %q", p.Name, p.Type))
			continue
		}
		if p.Default == nil {
			continue
		}
		if p.Direction == Out {
			errs = append(errs, fmt.Sprintf("output parameter '%s' cannot have a default value", p.Name))
		} else if len(p.Default) == 0 || len(p.Default) > limit {
			errs = append(errs, fmt.Sprintf("parameter '%s' default has %d components, type %s allows 1 to %d", p.Name, len(p.Default), p.Type, limit))
		}
	}

	for _, ref := range f.References() {
		if _, ok := declared[ref]; !ok {
			errs = append(errs, fmt.Sprintf("body references '%s' which is not a declared parameter", ref))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: function '%s':\n- %s", ErrInvalidDescriptor, f.Key(), strings.Join(errs, "\n- "))
	}
	return nil
}

// Render returns the body with parameter references renamed according to
// bindings. References without a binding keep their parameter name.
func (f *FunctionDescriptor) Render(bindings map[string]string) string {
	var sb strings.Builder
	last := 0
	for _, tok := range scanBody(f.Body) {
		if !tok.ref {
			continue
		}
		bound, ok := bindings[tok.text]
		if !ok {
			continue
		}
		sb.WriteString(f.Body[last:tok.offset])
		sb.WriteString(bound)
		last = tok.offset + len(tok.text)
	}
	sb.WriteString(f.Body[last:])
	return sb.String()
}
