// Package main provides the iprload binary: it streams InterPro XML files
// into an in-memory ontology graph and can snapshot the result to BadgerDB.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/proteinscope/iprload/config"
	"github.com/proteinscope/iprload/internal/persist"
	"github.com/proteinscope/iprload/internal/storage"
	"github.com/proteinscope/iprload/pkg/interpro"
	"github.com/proteinscope/iprload/pkg/ontology"
)

var (
	configPath   string
	dbPath       string
	ontologyName string
)

func main() {
	root := &cobra.Command{
		Use:   "iprload",
		Short: "Load InterPro XML into an ontology graph",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (YAML)")

	loadCmd := &cobra.Command{
		Use:   "load <file>...",
		Short: "Stream one or more InterPro XML files into an ontology",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLoad,
	}
	loadCmd.Flags().StringVar(&dbPath, "db", "", "BadgerDB directory for a persistent snapshot")
	loadCmd.Flags().StringVar(&ontologyName, "ontology", "", "ontology name")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print counts from a stored snapshot",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	statsCmd.Flags().StringVar(&dbPath, "db", "", "BadgerDB directory of the snapshot")

	root.AddCommand(loadCmd, statsCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runLoad(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if ontologyName != "" {
		cfg.Ontology.Name = ontologyName
	}
	if dbPath != "" {
		cfg.Store.Path = dbPath
	}

	onto := ontology.New(cfg.Ontology.Name)
	handler, err := interpro.NewHandler(interpro.Config{
		Ontology:      onto,
		ProgressEvery: cfg.Progress.Every,
		Progress: func(processed int) {
			logger.Info("progress", "records_processed", processed)
		},
	})
	if err != nil {
		return err
	}
	defer handler.Close()

	parser := interpro.NewParser(handler)
	for _, path := range args {
		if err := loadFile(parser, path); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		logger.Info("loaded file", "path", path,
			"records_seen", handler.RecordsSeen(),
			"records_processed", handler.RecordsProcessed())
	}

	terms := onto.Terms()
	placeholders := lo.CountBy(terms, func(t *ontology.Term) bool { return !t.Instantiated })
	obsolete := lo.CountBy(terms, func(t *ontology.Term) bool { return t.Obsolete })
	logger.Info("load complete",
		"ontology", onto.Name(),
		"terms", len(terms),
		"relationships", len(onto.Relationships()),
		"placeholders", placeholders,
		"obsolete", obsolete,
		"secondary_accessions", len(handler.SecondaryAccessions()))

	if cfg.Store.Path != "" {
		if err := snapshot(cfg.Store.Path, onto, handler.SecondaryAccessions()); err != nil {
			return err
		}
		logger.Info("snapshot written", "path", cfg.Store.Path)
	}
	return nil
}

func loadFile(parser *interpro.Parser, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return parser.Parse(f)
}

func snapshot(path string, onto *ontology.Ontology, secondary map[string][]string) error {
	st, err := storage.NewBadgerStorage(path)
	if err != nil {
		return err
	}
	defer st.Close()
	return persist.Snapshot(st, onto, secondary)
}

func runStats(cmd *cobra.Command, args []string) error {
	if dbPath == "" {
		return fmt.Errorf("--db is required")
	}

	st, err := storage.NewBadgerStorage(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := persist.ReadStats(st)
	if err != nil {
		return err
	}

	fmt.Printf("terms:         %d\n", stats.Terms)
	fmt.Printf("relationships: %d\n", stats.Relationships)
	fmt.Printf("secondary:     %d\n", stats.SecondaryRows)
	return nil
}
