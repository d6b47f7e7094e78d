// Package vector provides the numeric primitives shared by this module:
//   - Euclidean (L2) distance between feature vectors
//   - Feature encoding (BLOB) used by the SQLite dataset store and SQL functions
package vector
