package knn

import "go.uber.org/zap"

// Option configures a Classifier.
type Option func(o *options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used to report training set changes.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
