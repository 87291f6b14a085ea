package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/logiq/internal/engine"
	"github.com/abhisek/logiq/internal/questiongen"
	"github.com/abhisek/logiq/internal/rubric"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Generate questions from a PDF and print them",
	Long:  "Generates one or more multiple-choice questions from a PDF. Values not supplied as flags are prompted for interactively.",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, count, err := generationRequest(cmd)
		if err != nil {
			return err
		}

		e, cleanup, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if count == 1 {
			q, err := e.GenerateQuestion(ctx, req)
			if err != nil {
				return err
			}
			printQuestion(out, 1, q)
			return nil
		}

		questions, err := e.GenerateBatch(ctx, req, count)
		if err != nil {
			return err
		}
		if len(questions) < count {
			fmt.Fprintf(out, "Generated %d of %d requested questions.\n\n", len(questions), count)
		}
		for i, q := range questions {
			printQuestion(out, i+1, q)
		}
		return nil
	},
}

func init() {
	addGenerationFlags(askCmd, 1)
}

// generationRequest assembles an engine request from flags, prompting
// interactively for anything missing.
func generationRequest(cmd *cobra.Command) (engine.Request, int, error) {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	pdfPath, _ := cmd.Flags().GetString("pdf")
	if pdfPath == "" {
		var err error
		pdfPath, err = prompt(in, out, "PDF path: ")
		if err != nil {
			return engine.Request{}, 0, err
		}
		if pdfPath == "" {
			return engine.Request{}, 0, fmt.Errorf("a PDF path is required")
		}
	}

	level, _ := cmd.Flags().GetInt("level")
	if level == 0 {
		// Bad interactive input is re-prompted, not fatal.
		for {
			answer, err := prompt(in, out, "Difficulty level (1-5): ")
			if err != nil {
				return engine.Request{}, 0, err
			}
			level, err = strconv.Atoi(answer)
			if err == nil && level >= 1 && level <= rubric.LevelCount {
				break
			}
			fmt.Fprintf(out, "Please enter a number between 1 and %d.\n", rubric.LevelCount)
		}
	}
	if level < 1 || level > rubric.LevelCount {
		return engine.Request{}, 0, fmt.Errorf("level %d out of range 1-%d", level, rubric.LevelCount)
	}

	subjectName, _ := cmd.Flags().GetString("subject")
	if subjectName == "" && !cmd.Flags().Changed("subject") && interactive(cmd) {
		answer, err := prompt(in, out, "Subject [generic]: ")
		if err != nil {
			return engine.Request{}, 0, err
		}
		subjectName = answer
	}

	skillsSpec, _ := cmd.Flags().GetString("skills")
	var override *rubric.SkillProfile
	if skillsSpec == "" && !cmd.Flags().Changed("skills") && interactive(cmd) {
		for {
			answer, err := prompt(in, out, "Skill overrides (e.g. memory=0.8), empty for rubric defaults: ")
			if err != nil {
				return engine.Request{}, 0, err
			}
			override, err = parseSkills(answer)
			if err == nil {
				break
			}
			fmt.Fprintln(out, err.Error())
		}
	} else {
		var err error
		override, err = parseSkills(skillsSpec)
		if err != nil {
			return engine.Request{}, 0, err
		}
	}

	extra, _ := cmd.Flags().GetString("extra")
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return engine.Request{}, 0, fmt.Errorf("count %d must be positive", count)
	}

	return engine.Request{
		Path:          pdfPath,
		Level:         level,
		Subject:       rubric.ParseSubject(subjectName),
		SkillOverride: override,
		Extra:         extra,
	}, count, nil
}

// interactive reports whether the command should prompt for optional
// values. Once any generation flag is set, the caller is scripting and
// optional prompts would get in the way.
func interactive(cmd *cobra.Command) bool {
	return !cmd.Flags().Changed("pdf") && !cmd.Flags().Changed("level")
}

func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func printQuestion(out io.Writer, number int, q *questiongen.Question) {
	fmt.Fprintf(out, "Q%d. %s\n", number, q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(out, "  %c) %s\n", 'A'+i, opt.Text)
	}

	if idx := q.CorrectIndex(); idx >= 0 {
		fmt.Fprintf(out, "\nAnswer: %c) %s\n", 'A'+idx, q.Options[idx].Text)
	}
	if q.Explanation != "" {
		fmt.Fprintf(out, "Explanation: %s\n", q.Explanation)
	}
	fmt.Fprintf(out, "Skills: %s\n", q.Profile)
	fmt.Fprintf(out, "Difficulty: %d (requested level %d)\n\n", q.Difficulty, q.Level)
}
