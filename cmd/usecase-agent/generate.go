package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agenthands/usecase-agent/internal/core"
	"github.com/agenthands/usecase-agent/internal/core/model"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the research and generation pipeline once",
	Long: `Generate searches for the subject, saves the extracted reference links
and prints the generated use cases. API keys default to the configured
SEARCH_API_KEY and LLM_API_KEY.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		subject, _ := cmd.Flags().GetString("subject")
		if subject == "" {
			subject = a.cfg.Server.DefaultSubject
		}
		searchKey, _ := cmd.Flags().GetString("search-api-key")
		llmKey, _ := cmd.Flags().GetString("llm-api-key")
		asJSON, _ := cmd.Flags().GetBool("json")

		run, err := a.pipeline.Run(cmd.Context(), core.Input{
			Subject:      subject,
			SearchAPIKey: searchKey,
			LLMAPIKey:    llmKey,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(run)
		}
		if run.Failed() {
			fmt.Fprintln(out, run.SearchError)
			return errors.New("failed to retrieve industry data")
		}
		printRun(out, run)
		return nil
	},
}

func printRun(w io.Writer, run *model.Run) {
	fmt.Fprintln(w, "Industry Research Output:")
	for _, r := range run.Organic {
		fmt.Fprintf(w, "\n### %s\n%s\n---\n", r.Title, r.Snippet)
	}

	fmt.Fprintln(w, "\nReference Links:")
	for _, l := range run.Links {
		fmt.Fprintf(w, "- %s\n", l)
	}

	fmt.Fprintln(w, "\nGenerated Use Cases:")
	if len(run.UseCases) == 0 {
		fmt.Fprintln(w, run.UseCaseText())
		return
	}
	for _, uc := range run.UseCases {
		fmt.Fprintf(w, "\n#### %s\n### Objective/Use Case:\n%s\n### AI Application:\n%s\n### Cross-Functional Benefit:\n%s\n---\n",
			uc.Title, uc.Objective, uc.AIApplication, uc.Benefits)
	}
}

func init() {
	generateCmd.Flags().String("subject", "", "company or industry name")
	generateCmd.Flags().String("search-api-key", "", "search API key (default: $SEARCH_API_KEY)")
	generateCmd.Flags().String("llm-api-key", "", "use case generation API key (default: $LLM_API_KEY)")
	generateCmd.Flags().Bool("json", false, "print the run as JSON")
	rootCmd.AddCommand(generateCmd)
}
