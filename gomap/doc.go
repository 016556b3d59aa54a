// Package gomap provides encoding and decoding between IR nodes and Go values.
//
// # Usage
//
//	// Materialize IR into a Go struct
//	type User struct {
//	    Name string
//	    Age  int
//	}
//	var user User
//	err := gomap.FromIR(node, &user)
//
//	// Normalize a Go value into IR
//	node := gomap.FromGo(user)
//
// FromGo is total: any Go value maps to a node, falling back to an opaque
// wrapper for values with no canonical form.  ToGo is its inverse on the
// canonical types.  FromIR populates struct fields by JSON tag, exact
// name, or sanitized name, in that order; FromIRSafe does the same but
// skips fields whose values cannot be coerced instead of failing.
package gomap
