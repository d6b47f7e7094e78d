package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the resolved command settings.
type Config struct {
	K        int
	Count    int
	Seed     uint64
	Query    string
	DB       string
	Dataset  string
	LogLevel string
	LogFile  string
}

func addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("config", "c", "", "optional YAML config file")
	flags.Int("k", 5, "number of nearest neighbors that vote")
	flags.Int("count", 200, "number of synthetic examples to generate")
	flags.Uint64("seed", 0, "random seed for synthetic data (0 = time based)")
	flags.StringP("query", "q", "45,0", "comma separated query features")
	flags.String("db", "", "SQLite database holding training data sets")
	flags.String("dataset", "movies", "data set name in the SQLite database")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-file", "", "rotating log file; logs go to stderr when empty")
}

// loadConfig resolves settings from flags, KNN_* environment variables and
// the optional config file, in that order of precedence.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("knn")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	cfg := &Config{
		K:        v.GetInt("k"),
		Count:    v.GetInt("count"),
		Seed:     v.GetUint64("seed"),
		Query:    v.GetString("query"),
		DB:       v.GetString("db"),
		Dataset:  v.GetString("dataset"),
		LogLevel: v.GetString("log-level"),
		LogFile:  v.GetString("log-file"),
	}
	return cfg, nil
}
