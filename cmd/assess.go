package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/cogscreen/internal/assessment"
	"github.com/abhisek/cogscreen/internal/risk"
	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score an assessment document",
	Long: "Score an assessment document (personal info, answers and raw game sessions) and print\n" +
		"the cognitive profile. Use --save with --user to store the profile.",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		user, _ := cmd.Flags().GetString("user")
		save, _ := cmd.Flags().GetBool("save")
		asJSON, _ := cmd.Flags().GetBool("json")

		if save && user == "" {
			return fmt.Errorf("--save requires --user")
		}

		raw, err := readInput(cmd, input)
		if err != nil {
			return err
		}
		doc, err := assessment.DecodeDocument(raw)
		if err != nil {
			return err
		}
		bank, err := loadBank()
		if err != nil {
			return err
		}

		var report assessment.Report
		if save {
			r, err := openRepos(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer r.close()

			svc := assessment.NewService(r.profiles, cfg.Policy, logger,
				assessment.WithEvents(r.events),
				assessment.WithHistoryKeep(cfg.Store.HistoryKeep),
			)
			report, err = svc.Score(cmd.Context(), user, doc, bank)
			if err != nil {
				return err
			}
		} else {
			report = assessment.Analyze(doc.Input(bank, cfg.Policy), cfg.Policy)
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		p := &printer{
			w:       cmd.OutOrStdout(),
			color:   colorEnabled(cmd),
			catalog: risk.DefaultCatalog(),
			th:      cfg.Policy.Risk,
		}
		p.report(report)
		return nil
	},
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("--input is required")
	}
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func init() {
	assessCmd.Flags().StringP("input", "i", "", "Assessment document (JSON), or - for stdin")
	assessCmd.Flags().String("user", "", "User id the profile belongs to")
	assessCmd.Flags().Bool("save", false, "Store the profile (requires --user)")
	assessCmd.Flags().Bool("json", false, "Print the report as JSON")
}
