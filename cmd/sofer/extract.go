package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zvishalem/sofer/extract"
)

var extractOutput string

var extractCmd = &cobra.Command{
	Use:   "extract <file-or-url>",
	Short: "Extract an HTML page to markup",
	Long: `Extract the content of an HTML file or web page as markup source.

The result can be edited and converted later with the convert command.

Examples:
  sofer extract article.html -o article.md
  sofer extract https://example.org/article -o article.md
  sofer extract article.html          # prints to stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Output markup path (default: stdout)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	source := args[0]

	var page *extract.Page
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		page, err = extract.Fetch(cmd.Context(), source)
	} else {
		page, err = extract.ParseFile(source)
	}
	if err != nil {
		return err
	}

	out := page.Markup()
	if page.Title != "" && !strings.HasPrefix(out, "# ") {
		out = "# " + page.Title + "\n\n" + out
	}

	if extractOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(extractOutput, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", extractOutput, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Markup saved to: %s\n", extractOutput)
	return nil
}
