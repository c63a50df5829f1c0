// Package libdiff compares documents.
//
// Diff gives the structural changes between two documents as a list of
// Change values in document order.  Arrays are compared element by element
// after aligning them with a sequence diff, so an element inserted in the
// middle of an array is reported as a single insertion.
//
// Text gives a line oriented diff of the indented projections, and
// MergePatch an RFC 7386 JSON merge patch turning one document into
// another.
package libdiff
