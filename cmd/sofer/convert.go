package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zvishalem/sofer"
)

var (
	convertOutput string
	convertTitle  string
	convertFont   string
	convertSize   int
	convertLTR    bool
	convertDetect bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert a markup or HTML file to DOCX",
	Long: `Convert a markup or HTML file to a styled DOCX document.

The output path defaults to the input path with a .docx extension.

Examples:
  sofer convert paper.md
  sofer convert paper.md --title "מחקר משפטי" -o paper.docx
  sofer convert page.html --font Arial --size 11
  sofer convert readme.md --ltr`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output DOCX path (default: input with .docx extension)")
	convertCmd.Flags().StringVarP(&convertTitle, "title", "t", "", "Document title rendered on its own page")
	convertCmd.Flags().StringVar(&convertFont, "font", "", "Font family (overrides config)")
	convertCmd.Flags().IntVar(&convertSize, "size", 0, "Body text size in points (overrides config)")
	convertCmd.Flags().BoolVar(&convertLTR, "ltr", false, "Render left-to-right")
	convertCmd.Flags().BoolVar(&convertDetect, "detect-direction", false, "Choose direction from the source text")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input := args[0]
	output := convertOutput
	if output == "" {
		output = replaceExtension(input, ".docx")
	}

	c := sofer.Open(input)
	if convertTitle != "" {
		c = c.Title(convertTitle)
	}

	font := cfg.Font
	if convertFont != "" {
		font = convertFont
	}
	c = c.Font(font)

	size := cfg.Size
	if convertSize != 0 {
		size = convertSize
	}
	c = c.BaseSize(size)

	if convertLTR || cfg.Direction == "ltr" {
		c = c.LTR()
	}
	if convertDetect {
		c = c.DetectDirection()
	}

	if err := c.WriteDOCX(output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Document saved to: %s\n", output)
	return nil
}

func replaceExtension(path, ext string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") {
		return path[:i] + ext
	}
	return path + ext
}
