// Package profile provides serialization types for flame trees and layouts.
//
// This package defines the canonical wire format for flamefold's data, used
// for JSON artifacts, API responses, and caching.
//
// # Core Types
//
//   - [Tree], [Node]: nested JSON format for weighted call-trees
//   - [Layout], [Block]: positioned rectangles for rendering
//
// # Tree Serialization
//
// Trees use a nested node format:
//
//	{
//	  "total": 15,
//	  "roots": [
//	    {"name": "main", "total": 15, "children": [
//	      {"name": "foo", "self": 10, "total": 10},
//	      {"name": "baz", "self": 5, "total": 5}
//	    ]}
//	  ]
//	}
//
// Common operations:
//
//	p := profile.FromTree(t)                 // flame.Tree → Tree
//	t := p.Tree()                            // Tree → flame.Tree
//	data, _ := profile.MarshalTree(t)        // flame.Tree → []byte
//	t, _ := profile.UnmarshalTree(data)      // []byte → flame.Tree
//
// Round-trip fidelity: serialize → deserialize reproduces identical weights,
// ordering, and metadata.
//
// # Concurrency
//
// All functions are safe for concurrent use on distinct values.
package profile
