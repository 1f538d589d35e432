// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// the menu, registry, and storage layers can all import types without
// depending on each other.
package types

import "github.com/samber/mo"

// Student represents one student record in the registry.
//
// The ID is assigned by the caller (it is NOT auto-generated), is
// unique within a store, and never changes after creation. All other
// fields are mutable through the registry's update operation.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears when encoded to JSON
//     (useful for structured log output and debugging dumps).
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package at the input-collection boundary. "required" means the
//     field must be non-zero / non-empty when a student is created.
type Student struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"  validate:"required"`
	Age   int    `json:"age"   validate:"required"`
	Major string `json:"major" validate:"required"`
}

// StudentPatch describes a partial update to an existing student.
//
// Each field is an explicit presence wrapper (mo.Option) rather than a
// bare value, so "caller did not supply this field" (mo.None) is
// distinguishable from "caller supplied an empty or zero value"
// (mo.Some("") / mo.Some(0)). A truthiness test would conflate the
// two; the Option type cannot.
type StudentPatch struct {
	Name  mo.Option[string]
	Age   mo.Option[int]
	Major mo.Option[string]
}

// ApplyTo overwrites exactly the fields of s that the patch supplies.
// Fields left as mo.None keep their prior values. The ID is never
// touched — it is immutable after creation.
func (p StudentPatch) ApplyTo(s *Student) {
	if name, ok := p.Name.Get(); ok {
		s.Name = name
	}
	if age, ok := p.Age.Get(); ok {
		s.Age = age
	}
	if major, ok := p.Major.Get(); ok {
		s.Major = major
	}
}

// IsEmpty reports whether the patch supplies no fields at all.
func (p StudentPatch) IsEmpty() bool {
	return p.Name.IsAbsent() && p.Age.IsAbsent() && p.Major.IsAbsent()
}
