package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/viant/sqlite-knn/classifier"
	"github.com/viant/sqlite-knn/classifier/knn"
	"github.com/viant/sqlite-knn/dataset"
	"github.com/viant/sqlite-knn/engine"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "knn",
		Short:         "classify a query point with k-nearest-neighbors",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			if err := run(cmd.Context(), cfg, logger, cmd.OutOrStdout()); err != nil {
				logger.Error("classification failed", zap.Error(err))
				return err
			}
			return nil
		},
	}
	addFlags(cmd)
	return cmd
}

func run(ctx context.Context, cfg *Config, logger *zap.Logger, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	query, err := parseQuery(cfg.Query)
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rnd := rand.New(rand.NewPCG(seed, seed))

	examples, err := loadExamples(ctx, cfg, rnd, logger)
	if err != nil {
		return err
	}

	c := knn.New[string](knn.WithLogger(logger))
	c.Train(examples)
	label, err := c.Classify(query, cfg.K)
	if err != nil {
		return err
	}
	logger.Info("classified",
		zap.Float64s("query", query),
		zap.Int("k", cfg.K),
		zap.Int("examples", c.Len()),
		zap.String("label", label))
	_, err = fmt.Fprintln(out, label)
	return err
}

// loadExamples generates synthetic examples, or reads the configured data set
// from SQLite, seeding it with synthetic examples when it is empty.
func loadExamples(ctx context.Context, cfg *Config, rnd *rand.Rand, logger *zap.Logger) ([]classifier.Example[string], error) {
	if cfg.DB == "" {
		return dataset.Movies(cfg.Count, rnd), nil
	}
	db, err := engine.Open(cfg.DB)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	store, err := dataset.NewStore(ctx, db)
	if err != nil {
		return nil, err
	}
	n, err := store.Count(ctx, cfg.Dataset)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if err := store.Save(ctx, cfg.Dataset, dataset.Movies(cfg.Count, rnd)); err != nil {
			return nil, err
		}
		logger.Info("seeded data set", zap.String("db", cfg.DB), zap.String("dataset", cfg.Dataset), zap.Int("examples", cfg.Count))
	}
	return store.Load(ctx, cfg.Dataset)
}

func parseQuery(raw string) ([]float64, error) {
	var query []float64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid query feature %q: %w", part, classifier.ErrInvalidArgument)
		}
		query = append(query, v)
	}
	return query, nil
}
