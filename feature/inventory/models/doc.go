// Package models defines the inventory domain entities: kits, parts, the
// keyed part collection, acquisition events, and the derived system summary.
//
// All types have value semantics. A PartMap held by an appended event is an
// independent snapshot produced via Clone; the live, UI-editable collection
// and recorded history never share a mutable object.
package models
