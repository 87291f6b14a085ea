package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/logiq/internal/rubric"
)

var rubricCmd = &cobra.Command{
	Use:   "rubric",
	Short: "Build and print the difficulty rubric for a PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfPath, _ := cmd.Flags().GetString("pdf")
		if pdfPath == "" {
			return fmt.Errorf("--pdf is required")
		}
		subjectName, _ := cmd.Flags().GetString("subject")
		asJSON, _ := cmd.Flags().GetBool("json")

		e, cleanup, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		r, err := e.Rubric(context.Background(), pdfPath, rubric.ParseSubject(subjectName))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(rubricJSON(r))
		}

		fmt.Fprintf(out, "Rubric for %s (subject: %s)\n", r.DocTitle, r.Subject)
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, lv := range r.Levels {
			fmt.Fprintf(out, "%d. %s\n", lv.Number, lv.Name)
			fmt.Fprintf(out, "   %s\n", lv.Description)
			fmt.Fprintf(out, "   skills: memory=%.2f reasoning=%.2f numerical=%.2f language=%.2f\n",
				lv.Profile.Memory, lv.Profile.Reasoning, lv.Profile.Numerical, lv.Profile.Language)
			if lv.ExampleInstruction != "" {
				fmt.Fprintf(out, "   e.g. %s\n", lv.ExampleInstruction)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

// rubricLevelJSON mirrors the wire shape used when building the rubric.
type rubricLevelJSON struct {
	Level              int                 `json:"level"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	SkillProfile       rubric.SkillProfile `json:"skill_profile"`
	ExampleInstruction string              `json:"example_instruction,omitempty"`
}

type rubricDocJSON struct {
	Subject  string            `json:"subject"`
	DocTitle string            `json:"doc_title"`
	Levels   []rubricLevelJSON `json:"levels"`
}

func rubricJSON(r *rubric.Rubric) rubricDocJSON {
	doc := rubricDocJSON{
		Subject:  string(r.Subject),
		DocTitle: r.DocTitle,
	}
	for _, lv := range r.Levels {
		doc.Levels = append(doc.Levels, rubricLevelJSON{
			Level:              lv.Number,
			Name:               lv.Name,
			Description:        lv.Description,
			SkillProfile:       lv.Profile,
			ExampleInstruction: lv.ExampleInstruction,
		})
	}
	return doc
}

func init() {
	rubricCmd.Flags().String("pdf", "", "Path to the source PDF")
	rubricCmd.Flags().String("subject", "", "Subject hint for the rubric")
	rubricCmd.Flags().String("provider", "", "LLM provider: groq, openai, anthropic, gemini")
	rubricCmd.Flags().Bool("json", false, "Print the rubric as JSON")
}
