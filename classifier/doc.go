// Package classifier defines a minimal abstraction for classifiers that are
// trained from labeled feature vectors and label new query vectors, together
// with the error kinds shared by implementations. The k-nearest-neighbors
// implementation lives in the knn subpackage.
package classifier
