// Command knn trains a k-nearest-neighbors classifier on a movie-preference
// data set and prints the label predicted for a query point.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
