package dataset

import (
	"math/rand/v2"

	"github.com/viant/sqlite-knn/classifier"
)

const (
	LikesMovies    = "Likes Movies"
	DislikesMovies = "Doesn't Like Movies"
)

// Movies generates count examples with features [age, gender], age in
// [5, 60) and gender in {0, 1}. Labels alternate between LikesMovies (even
// positions) and DislikesMovies (odd positions).
func Movies(count int, rnd *rand.Rand) []classifier.Example[string] {
	if count <= 0 {
		return nil
	}
	examples := make([]classifier.Example[string], count)
	for i := range examples {
		age := 5 + rnd.IntN(55)
		gender := rnd.IntN(2)
		label := LikesMovies
		if i%2 != 0 {
			label = DislikesMovies
		}
		examples[i] = classifier.Example[string]{
			Features: []float64{float64(age), float64(gender)},
			Label:    label,
		}
	}
	return examples
}
