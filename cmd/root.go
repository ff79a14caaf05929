package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ritwika/edurag/internal/engine"
	"github.com/ritwika/edurag/internal/llm"
	"github.com/ritwika/edurag/internal/quizgen"
	"github.com/ritwika/edurag/internal/retrieval"
	"github.com/ritwika/edurag/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "edurag",
	Short: "Adaptive tutoring engine for data structures and algorithms",
	Long:  "EduRAG — mastery estimation, gap detection, and adaptive learning paths over a competency graph, with retrieval-backed remediation.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDURAG_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to the content directory to index (overrides EDURAG_CONTENT env var)")

	rootCmd.AddCommand(masteryCmd)
	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(sequenceCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EDURAG_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveContentDir returns the content directory from the --content flag or
// the EDURAG_CONTENT env var. Empty means no retrieval content.
func resolveContentDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		return p
	}
	return os.Getenv("EDURAG_CONTENT")
}

// openStore opens the store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// buildEngine wires an engine over the store, indexing the content directory
// when one is configured. Missing content or an unconfigured LLM provider
// degrade the engine rather than failing it.
func buildEngine(ctx context.Context, cmd *cobra.Command, st *store.Store) *engine.Engine {
	var text, media retrieval.Retriever
	if dir := resolveContentDir(cmd); dir != "" {
		index, err := retrieval.LoadContent(ctx, dir, contentEmbedder())
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: content index unavailable: %v\n", err)
		} else {
			text, media = index, index
		}
	}

	var gen quizgen.Generator
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quiz generation will be unavailable.")
	} else {
		gen = quizgen.New(provider, quizgen.DefaultConfig())
	}

	return engine.New(st, text, media, gen)
}

// contentEmbedder picks the OpenAI embedder when a key is configured, else
// the deterministic local embedder.
func contentEmbedder() retrieval.Embedder {
	if key := os.Getenv("EDURAG_OPENAI_API_KEY"); key != "" {
		if e, err := retrieval.NewOpenAIEmbedder(key, ""); err == nil {
			return e
		}
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		if e, err := retrieval.NewOpenAIEmbedder(key, ""); err == nil {
			return e
		}
	}
	return retrieval.LocalEmbedder{}
}
