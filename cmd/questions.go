package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/cogscreen/internal/questionnaire"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questionnaire items",
	RunE: func(cmd *cobra.Command, args []string) error {
		adaptive, _ := cmd.Flags().GetBool("adaptive")
		category, _ := cmd.Flags().GetString("category")

		bank, err := loadBank()
		if err != nil {
			return err
		}
		if category != "" && !questionnaire.Category(category).Valid() {
			return fmt.Errorf("unknown category %q", category)
		}

		items := bank.Base
		if adaptive {
			items = append(append([]questionnaire.Item(nil), bank.Base...), bank.Adaptive...)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-4s  %-20s  %-9s  %s\n", "ID", "Category", "Adaptive", "Question")
		fmt.Fprintln(w, strings.Repeat("─", 100))

		n := 0
		for _, it := range items {
			if category != "" && string(it.Category) != category {
				continue
			}
			mark := ""
			if it.Adaptive {
				mark = "yes"
			}
			fmt.Fprintf(w, "%-4d  %-20s  %-9s  %s\n", it.ID, it.Category.DisplayName(), mark, it.Text)
			n++
		}

		if len(bank.Base) > 0 {
			var opts []string
			for _, o := range bank.Base[0].Options {
				opts = append(opts, fmt.Sprintf("%s=%d", o.Value, o.Score))
			}
			fmt.Fprintf(w, "\n%d items; options: %s\n", n, strings.Join(opts, ", "))
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().Bool("adaptive", false, "Include adaptive follow-up items")
	questionsCmd.Flags().String("category", "", "Filter by category (e.g. executive_function)")
}
