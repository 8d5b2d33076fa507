// Package todo holds the task list and its JSON snapshot files.
//
// A snapshot file is a single JSON array holding every task of a list in
// order:
//
//	[
//	  {
//	    "name": "Buy milk",
//	    "description": "2%",
//	    "priority": "Low",
//	    "add_time": "2024-01-01T09:30:00.123456789+02:00"
//	  }
//	]
//
// # Priority Values
//
//   - "Low"
//   - "Medium"
//   - "High"
//
// # Lookup
//
// Tasks have no identity beyond their name. Lookups scan the list front to
// back and return the first task whose name matches exactly, so duplicate
// names are allowed and only the first of them is reachable by name.
//
// # File Format
//
// Snapshots are never overwritten: saving to an existing path fails with
// ErrFileExists. Loading validates the file against an embedded JSON Schema
// before decoding and replaces the whole list on success. Files are written
// with:
//   - 2-space indentation
//   - Trailing newline
package todo
