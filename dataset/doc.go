// Package dataset supplies labeled training examples for the classifier:
//   - Movies: a synthetic movie-preference data set
//   - Store: a SQLite-backed source of named data sets
package dataset
