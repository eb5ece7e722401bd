package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/nightsky/internal/ui"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Show the part of speech chosen for each word",
	Long: `Prints every word of the text with its part-of-speech category, in the
category's star color, and the rule that chose it. Reads stdin when no
text is given.`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().Bool("legend", false, "print the category legend after the table")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	legend, _ := cmd.Flags().GetBool("legend")

	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	text := strings.Join(args, " ")
	if len(args) == 0 {
		text, err = textFromReader(cmd.InOrStdin(), false)
		if err != nil {
			return err
		}
	}

	engine, err := engineFor(e.cfg, nil)
	if err != nil {
		return err
	}
	out := ui.NewTo(cmd.OutOrStdout(), e.cfg.Verbose)
	out.ClassificationTable(engine.Classify(text))
	if legend {
		out.Legend()
	}
	return nil
}
