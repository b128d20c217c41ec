// Package form provides the form-state capabilities a list field consumes and
// an in-memory container implementing them.
//
// Values, errors and touched markers are JSON documents addressed by dotted
// paths ("tags", "meta.labels", "items.0.aliases"), read with gjson and
// written with sjson.
package form
