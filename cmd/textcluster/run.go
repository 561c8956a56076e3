package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/hupe1980/textcluster"
	"github.com/hupe1980/textcluster/codec"
	"github.com/hupe1980/textcluster/corpus"
	"github.com/hupe1980/textcluster/distance"
	"github.com/hupe1980/textcluster/internal/demo"
	"github.com/hupe1980/textcluster/prommetrics"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

type runFlags struct {
	store storeFlags

	input  string
	prefix string
	format string
	column int
	header bool

	concurrency int
	rps         float64

	iterations  int
	metric      string
	legacy      bool
	maxAttempts int
	seed        int64
	timeout     time.Duration

	output      string
	codec       string
	logLevel    string
	logFile     string
	metricsFile string
}

func newRunCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Cluster a corpus and print the labels",
		Long: `Loads documents from a blob (--input) or every blob under a prefix
(--prefix), clusters them and prints one cluster per block. Without
--input or --prefix the built-in demo corpus is clustered.

Every flag can also be set in a config file (--config) or through a
TEXTCLUSTER_ environment variable, e.g. TEXTCLUSTER_SECRET_KEY.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(v, cmd.Flags()); err != nil {
				return err
			}
			return runCluster(cmd.Context(), cmd.OutOrStdout(), flagsFromViper(v))
		},
	}

	fs := cmd.Flags()
	fs.String("config", "", "config file (yaml, toml or json)")

	fs.String("source", "local", "blob source: local, s3 or minio")
	fs.String("root", ".", "root directory for the local source")
	fs.String("bucket", "", "bucket for s3 and minio sources")
	fs.String("region", "", "bucket region")
	fs.String("endpoint", "", "object store endpoint (required for minio)")
	fs.String("access-key", "", "minio access key")
	fs.String("secret-key", "", "minio secret key")
	fs.Bool("secure", true, "use TLS for minio")

	fs.String("input", "", "blob holding the corpus (.zst and .lz4 are decompressed)")
	fs.String("prefix", "", "load every blob under this prefix")
	fs.String("format", "auto", "corpus format: auto, lines or csv")
	fs.Int("column", 0, "zero-based CSV column with the document text")
	fs.Bool("skip-header", false, "skip the first CSV record")
	fs.Int("concurrency", corpus.DefaultConcurrency, "parallel blob fetches for --prefix")
	fs.Float64("rps", 0, "max blob fetches per second for --prefix (0 = unlimited)")

	fs.Int("iterations", textcluster.DefaultIterations, "assignment passes per attempt (0 = until stable)")
	fs.String("metric", "cosine", "similarity: cosine or euclidean")
	fs.Bool("legacy-polarity", false, "prefer the farthest centroid under euclidean")
	fs.Int("max-attempts", 0, "reseeding attempts before giving up (0 = default)")
	fs.Int64("seed", 0, "random seed (0 = nondeterministic)")
	fs.Duration("timeout", 0, "abort loading and clustering after this long (0 = no limit)")

	fs.String("output", "", "write a report blob (compressed by extension)")
	fs.String("codec", "go-json", "report codec: "+codec.Names())
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.String("log-file", "", "write JSON logs to a rotating file instead of stderr")
	fs.String("metrics-file", "", "write Prometheus metrics to this file after the run")

	return cmd
}

// loadConfig layers flags over environment over the config file.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	v.SetEnvPrefix("TEXTCLUSTER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config error: %w", err)
		}
	}
	return nil
}

func flagsFromViper(v *viper.Viper) runFlags {
	return runFlags{
		store: storeFlags{
			source:    v.GetString("source"),
			root:      v.GetString("root"),
			bucket:    v.GetString("bucket"),
			region:    v.GetString("region"),
			endpoint:  v.GetString("endpoint"),
			accessKey: v.GetString("access-key"),
			secretKey: v.GetString("secret-key"),
			secure:    v.GetBool("secure"),
		},
		input:       v.GetString("input"),
		prefix:      v.GetString("prefix"),
		format:      v.GetString("format"),
		column:      v.GetInt("column"),
		header:      v.GetBool("skip-header"),
		concurrency: v.GetInt("concurrency"),
		rps:         v.GetFloat64("rps"),
		iterations:  v.GetInt("iterations"),
		metric:      v.GetString("metric"),
		legacy:      v.GetBool("legacy-polarity"),
		maxAttempts: v.GetInt("max-attempts"),
		seed:        v.GetInt64("seed"),
		timeout:     v.GetDuration("timeout"),
		output:      v.GetString("output"),
		codec:       v.GetString("codec"),
		logLevel:    v.GetString("log-level"),
		logFile:     v.GetString("log-file"),
		metricsFile: v.GetString("metrics-file"),
	}
}

func runCluster(ctx context.Context, out io.Writer, f runFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if f.timeout < 0 {
		return fmt.Errorf("invalid --timeout: %s", f.timeout)
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := textcluster.NewTextLogger(level)
	if f.logFile != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   f.logFile,
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
		defer fileWriter.Close()
		logger = textcluster.NewWriterLogger(fileWriter, level)
	}

	metric, err := distance.ParseMetric(f.metric)
	if err != nil {
		return err
	}

	enc, ok := codec.ByName(f.codec)
	if !ok {
		return fmt.Errorf("unknown codec %q (want one of %s)", f.codec, codec.Names())
	}

	format, err := corpus.ParseFormat(f.format)
	if err != nil {
		return err
	}

	opts := []textcluster.Option{
		textcluster.WithIterations(f.iterations),
		textcluster.WithMetric(metric),
		textcluster.WithLogger(logger),
	}
	if f.legacy {
		opts = append(opts, textcluster.WithLegacyEuclideanPolarity())
	}
	if f.maxAttempts > 0 {
		opts = append(opts, textcluster.WithMaxAttempts(f.maxAttempts))
	}
	if f.seed != 0 {
		opts = append(opts, textcluster.WithRandSource(textcluster.NewRandSource(uint64(f.seed))))
	}
	if f.metricsFile != "" {
		collector := prommetrics.NewCollector("textcluster")
		opts = append(opts, textcluster.WithMetricsCollector(collector))
		defer func() {
			if err := collector.WriteToTextfile(f.metricsFile); err != nil {
				logger.Error("failed to write metrics", slog.String("path", f.metricsFile), slog.Any("error", err))
			}
		}()
	}

	clusterer, err := textcluster.New(opts...)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, f.store)
	if err != nil {
		return err
	}

	loadOpts := corpus.Options{
		Format:            format,
		Column:            f.column,
		SkipHeader:        f.header,
		Concurrency:       f.concurrency,
		RequestsPerSecond: f.rps,
	}

	var docs []string
	switch {
	case f.input != "":
		docs, err = corpus.Load(ctx, store, f.input, loadOpts)
	case f.prefix != "":
		docs, err = corpus.LoadPrefix(ctx, store, f.prefix, loadOpts)
	default:
		docs = demo.Corpus()
	}
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := clusterer.Run(ctx, docs)
	if err != nil {
		return err
	}
	logger.Info("clustered corpus",
		slog.Int("documents", len(docs)),
		slog.Int("k", res.K),
		slog.Duration("elapsed", time.Since(start)),
	)

	printResult(out, res)

	if f.output != "" {
		data, err := res.Encode(enc)
		if err != nil {
			return err
		}
		if err := corpus.Save(ctx, store, f.output, data); err != nil {
			return err
		}
	}
	return nil
}

func printResult(w io.Writer, res *textcluster.Result) {
	fmt.Fprintf(w, "k=%d attempts=%d passes=%d converged=%t\n", res.K, res.Attempts, res.Passes, res.Converged)
	for c := range res.K {
		docs := res.Cluster(c)
		fmt.Fprintf(w, "\ncluster %d (%d)\n", c, len(docs))
		for _, d := range docs {
			fmt.Fprintf(w, "  %s\n", d)
		}
	}
}
