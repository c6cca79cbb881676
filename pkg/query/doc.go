// Package query selects nodes from a tree with boolean expressions.
//
// Expressions use the expr language and see one node at a time:
//
//	leaf && result contains "red"
//	depth >= 2 and tag == "showMap"
//	branches > 2
//
// Absent optional fields evaluate to the empty string.
package query
