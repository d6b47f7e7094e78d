package classifier

// Example is a labeled point used to train a classifier.
type Example[L comparable] struct {
	Features []float64
	Label    L
}

// Classifier defines the training and classification lifecycle shared by
// classifier implementations.
type Classifier[L comparable] interface {
	// Train replaces any existing training data with examples.
	Train(examples []Example[L])

	// TrainMore appends examples to the existing training data, or behaves
	// like Train when the classifier has not been trained yet.
	TrainMore(examples []Example[L])

	// Classify returns the label predicted for query, considering the k
	// nearest training examples.
	Classify(query []float64, k int) (L, error)
}

// Neighbor describes a training example selected by a nearest-neighbor scan.
type Neighbor[L comparable] struct {
	Example  Example[L]
	Distance float64
	// Index is the position of Example in the training set.
	Index int
}
