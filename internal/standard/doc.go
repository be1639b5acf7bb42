// Package standard is the compiled-in list of node definitions shipped with
// shadegrid: a handful of math and logic functions and the two built-in
// contexts. The list is explicit and ordered; adding a definition means adding
// it to Candidates.
package standard
