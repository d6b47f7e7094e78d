package knn

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"sync"

	"github.com/viant/sqlite-knn/classifier"
	"github.com/viant/sqlite-knn/vector"
	"go.uber.org/zap"
)

// Classifier is a brute-force k-nearest-neighbors classifier. It is safe for
// concurrent use: queries share a read lock, training takes the write lock.
// The zero value is an untrained classifier without logging.
type Classifier[L comparable] struct {
	examples []classifier.Example[L]
	trained  bool
	logger   *zap.Logger
	mu       sync.RWMutex
}

// New creates an untrained classifier.
func New[L comparable](opts ...Option) *Classifier[L] {
	o := newOptions(opts)
	return &Classifier[L]{logger: o.logger}
}

// Train replaces the training set with a copy of examples.
func (c *Classifier[L]) Train(examples []classifier.Example[L]) {
	cloned := cloneExamples(examples)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.examples = cloned
	c.trained = true
	c.log().Debug("knn: trained", zap.Int("examples", len(cloned)))
}

// TrainMore appends a copy of examples to the training set. On an untrained
// classifier it behaves like Train.
func (c *Classifier[L]) TrainMore(examples []classifier.Example[L]) {
	cloned := cloneExamples(examples)
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.trained {
		c.examples = cloned
		c.trained = true
	} else {
		c.examples = append(c.examples, cloned...)
	}
	c.log().Debug("knn: trained more",
		zap.Int("added", len(cloned)),
		zap.Int("examples", len(c.examples)))
}

func (c *Classifier[L]) log() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}

// Len returns the number of training examples.
func (c *Classifier[L]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.examples)
}

// Classify returns the majority label among the k training examples nearest
// to query. When k exceeds the training set size all examples vote.
func (c *Classifier[L]) Classify(query []float64, k int) (L, error) {
	var zero L
	c.mu.RLock()
	defer c.mu.RUnlock()
	neighbors, err := c.nearest(query, k)
	if err != nil {
		return zero, err
	}
	return vote(neighbors), nil
}

// Nearest returns up to k training examples ordered by ascending distance to
// query. Examples at equal distance keep their training order.
func (c *Classifier[L]) Nearest(query []float64, k int) ([]classifier.Neighbor[L], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	neighbors, err := c.nearest(query, k)
	if err != nil {
		return nil, err
	}
	for i := range neighbors {
		neighbors[i].Example.Features = slices.Clone(neighbors[i].Example.Features)
	}
	return neighbors, nil
}

// nearest expects the read lock to be held.
func (c *Classifier[L]) nearest(query []float64, k int) ([]classifier.Neighbor[L], error) {
	if k <= 0 {
		return nil, fmt.Errorf("knn: k must be positive, got %d: %w", k, classifier.ErrInvalidArgument)
	}
	if len(query) == 0 {
		return nil, fmt.Errorf("knn: empty query: %w", classifier.ErrInvalidArgument)
	}
	if !c.trained {
		return nil, fmt.Errorf("knn: %w", classifier.ErrUninitialized)
	}
	if len(c.examples) == 0 {
		return nil, fmt.Errorf("knn: training set is empty: %w", classifier.ErrUninitialized)
	}
	neighbors := make([]classifier.Neighbor[L], 0, len(c.examples))
	for i, example := range c.examples {
		d, err := vector.L2Distance(example.Features, query)
		if err != nil {
			if errors.Is(err, vector.ErrDimensionMismatch) {
				return nil, fmt.Errorf("knn: %w", &classifier.DimensionError{Index: i, Expected: len(query), Actual: len(example.Features)})
			}
			return nil, fmt.Errorf("knn: %w", err)
		}
		neighbors = append(neighbors, classifier.Neighbor[L]{Example: example, Distance: d, Index: i})
	}
	sort.SliceStable(neighbors, func(a, b int) bool {
		return less(neighbors[a].Distance, neighbors[b].Distance)
	})
	if k > len(neighbors) {
		k = len(neighbors)
	}
	return neighbors[:k], nil
}

// less orders distances ascending with NaN last.
func less(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a < b
}

// vote returns the most frequent label; on equal counts the label seen first wins.
func vote[L comparable](neighbors []classifier.Neighbor[L]) L {
	counts := make(map[L]int, len(neighbors))
	order := make([]L, 0, len(neighbors))
	for _, n := range neighbors {
		if _, ok := counts[n.Example.Label]; !ok {
			order = append(order, n.Example.Label)
		}
		counts[n.Example.Label]++
	}
	var winner L
	best := 0
	for _, label := range order {
		if counts[label] > best {
			winner, best = label, counts[label]
		}
	}
	return winner
}

func cloneExamples[L comparable](examples []classifier.Example[L]) []classifier.Example[L] {
	if len(examples) == 0 {
		return nil
	}
	cloned := make([]classifier.Example[L], len(examples))
	for i, e := range examples {
		cloned[i] = classifier.Example[L]{Features: slices.Clone(e.Features), Label: e.Label}
	}
	return cloned
}

// Ensure Classifier satisfies the classifier.Classifier interface.
var _ classifier.Classifier[string] = (*Classifier[string])(nil)
