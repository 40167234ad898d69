package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zvishalem/sofer"
)

var (
	mergeOutput   string
	mergeTitle    string
	mergeSubtitle string
)

var mergeCmd = &cobra.Command{
	Use:   "merge <chapter>...",
	Short: "Merge chapter files into one document",
	Long: `Merge markup chapter files into a single document, optionally
preceded by a title page. Missing chapter files are skipped with a
warning so partial drafts still merge.

When the output path ends in .docx the merged source converts directly;
otherwise the merged markup is written as-is.

Examples:
  sofer merge ch1.md ch2.md ch3.md -o full_paper.md --title "המאמר המלא"
  sofer merge reports/*.md -o paper.docx --title "מחקר" --subtitle "טיוטה"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "full_paper.md", "Output path (.md or .docx)")
	mergeCmd.Flags().StringVarP(&mergeTitle, "title", "t", "", "Title page heading")
	mergeCmd.Flags().StringVar(&mergeSubtitle, "subtitle", "", "Title page subheading")
}

func runMerge(cmd *cobra.Command, args []string) error {
	var parts []string

	if mergeTitle != "" {
		page := "# " + mergeTitle + "\n"
		if mergeSubtitle != "" {
			page += "## " + mergeSubtitle + "\n"
		}
		page += "---\n"
		parts = append(parts, page)
	}

	merged := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipping missing chapter %s\n", path)
				continue
			}
			return fmt.Errorf("reading %s: %w", path, err)
		}
		parts = append(parts, string(data))
		merged++
	}
	if merged == 0 {
		return fmt.Errorf("no chapter files could be read")
	}

	source := strings.Join(parts, "\n\n")

	if strings.HasSuffix(mergeOutput, ".docx") {
		c := sofer.FromString(source)
		if mergeTitle != "" {
			c = c.Title(mergeTitle)
		}
		if err := c.WriteDOCX(mergeOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Document saved to: %s\n", mergeOutput)
		return nil
	}

	if err := os.WriteFile(mergeOutput, []byte(source), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", mergeOutput, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Merged %d chapters into: %s\n", merged, mergeOutput)
	return nil
}
