package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/logiq/internal/document"
	"github.com/abhisek/logiq/internal/engine"
	"github.com/abhisek/logiq/internal/llm"
	"github.com/abhisek/logiq/internal/questiongen"
	"github.com/abhisek/logiq/internal/rubric"
	"github.com/abhisek/logiq/internal/store"
)

// addGenerationFlags registers the flags shared by ask and play.
func addGenerationFlags(cmd *cobra.Command, defaultCount int) {
	cmd.Flags().String("pdf", "", "Path to the source PDF")
	cmd.Flags().Int("level", 0, "Difficulty level 1-5")
	cmd.Flags().String("subject", "", "Subject hint: physics, math, chemistry, biology, history, english, generic")
	cmd.Flags().String("skills", "", "Skill weight overrides, e.g. memory=0.8,reasoning=0.5")
	cmd.Flags().String("extra", "", "Extra free-form instruction for the generator")
	cmd.Flags().IntP("count", "n", defaultCount, "Number of questions to generate")
	cmd.Flags().String("provider", "", "LLM provider: groq, openai, anthropic, gemini")
}

// setupProvider builds the LLM provider from flags and environment,
// prompting for an API key on the terminal as a last resort. Keys entered
// this way are never echoed, logged, or persisted.
func setupProvider(cmd *cobra.Command, eventRepo store.EventRepo) (llm.Provider, error) {
	ctx := cmd.Context()
	cfg := llm.ConfigFromEnv()

	explicit, _ := cmd.Flags().GetString("provider")
	if explicit != "" {
		cfg.Provider = explicit
	}

	if err := cfg.Validate(); err != nil {
		if explicit == "" {
			if discovered, ok := llm.DiscoverConfig(); ok {
				return llm.NewProvider(ctx, discovered, eventRepo)
			}
		}

		key, keyErr := promptAPIKey(cfg.Provider)
		if keyErr != nil {
			return nil, fmt.Errorf("%v; %w", err, keyErr)
		}
		cfg = cfg.WithAPIKey(key)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return llm.NewProvider(ctx, cfg, eventRepo)
}

// promptAPIKey reads an API key from the terminal without echoing it.
func promptAPIKey(provider string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no API key configured and stdin is not a terminal")
	}

	fmt.Fprintf(os.Stderr, "Enter %s API key (input hidden): ", provider)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read API key: %w", err)
	}

	key := strings.TrimSpace(string(raw))
	if key == "" {
		return "", fmt.Errorf("empty API key")
	}
	return key, nil
}

// buildEngine wires the full pipeline. The telemetry store is best-effort:
// if it cannot be opened, generation proceeds without it.
func buildEngine(cmd *cobra.Command) (*engine.Engine, func(), error) {
	var (
		eventRepo store.EventRepo
		cleanup   = func() {}
	)

	if dbPath, err := resolveDBPath(cmd); err != nil {
		fmt.Fprintln(os.Stderr, "warning: telemetry disabled:", err)
	} else if st, err := store.Open(dbPath); err != nil {
		fmt.Fprintln(os.Stderr, "warning: telemetry disabled:", err)
	} else {
		eventRepo = st.EventRepo()
		cleanup = func() { st.Close() }
	}

	provider, err := setupProvider(cmd, eventRepo)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("configure LLM provider: %w", err)
	}

	e := engine.New(
		document.NewPDFExtractor(),
		rubric.NewBuilder(provider, rubric.DefaultBuilderConfig()),
		questiongen.New(provider, questiongen.DefaultConfig()),
		engine.DefaultConfig(),
	)
	return e, cleanup, nil
}

// parseSkills parses "memory=0.8,reasoning=0.5" into a validated profile.
// An empty string means no override.
func parseSkills(s string) (*rubric.SkillProfile, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	weights := make(map[string]float64)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid skill weight %q (want name=value)", pair)
		}
		var w float64
		if _, err := fmt.Sscanf(strings.TrimSpace(value), "%f", &w); err != nil {
			return nil, fmt.Errorf("invalid weight for %q: %w", strings.TrimSpace(name), err)
		}
		weights[strings.TrimSpace(name)] = w
	}

	profile, err := rubric.NormalizeWeights(weights)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
