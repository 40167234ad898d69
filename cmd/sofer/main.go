package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sofer",
	Short: "Convert Hebrew markup documents to styled DOCX",
	Long: `sofer converts lightweight markup with Hebrew right-to-left layout
into paginated, styled DOCX documents.

Examples:
  sofer convert paper.md --title "מחקר משפטי"
  sofer convert page.html -o page.docx
  sofer merge ch1.md ch2.md ch3.md -o full_paper.md --title "המאמר המלא"
  sofer extract https://example.org/article -o article.md`,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
