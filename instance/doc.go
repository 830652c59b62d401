// Package instance reads membership problems from YAML or JSON documents:
//
//	name: doubling
//	candidate: [2, 3, 4, 3]
//	generators:
//	  - [0, 2, 2, 3]
//	expect: true
//
// JSON is accepted as the YAML subset it is. Validate reports every problem
// of a document at once.
package instance
