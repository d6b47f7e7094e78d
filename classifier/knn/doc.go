// Package knn provides a k-nearest-neighbors classifier that answers queries
// by scanning every training example, ranking them by Euclidean distance and
// taking a majority vote among the k closest labels.
//
// Ties are resolved deterministically: examples at equal distance keep their
// training order, and among labels with equal votes the label encountered
// first in distance order wins.
package knn
