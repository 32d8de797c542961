package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/cogscreen/internal/risk"
	"github.com/abhisek/cogscreen/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect stored profiles",
}

var profileShowCmd = &cobra.Command{
	Use:   "show <user>",
	Short: "Show a user's latest profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		r, err := openRepos(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer r.close()

		prof, err := r.profiles.Get(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no profile stored for %q", args[0])
		}
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(prof)
		}

		p := &printer{
			w:       cmd.OutOrStdout(),
			color:   colorEnabled(cmd),
			catalog: risk.DefaultCatalog(),
			th:      cfg.Policy.Risk,
		}
		fmt.Fprintf(p.w, "Profile of %s (session %s, %s)\n\n",
			args[0], prof.SessionID, prof.UpdatedAt.Local().Format("2006-01-02 15:04"))
		p.profile(prof.Profile)
		p.disclaimer()
		return nil
	},
}

var profileHistoryCmd = &cobra.Command{
	Use:   "history <user>",
	Short: "List a user's stored profiles, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		r, err := openRepos(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer r.close()

		hist, err := r.profiles.History(cmd.Context(), args[0], limit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(hist) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No profiles stored for %q.\n", args[0])
			return nil
		}

		p := &printer{w: cmd.OutOrStdout()}
		p.history(hist)
		return nil
	},
}

func init() {
	profileShowCmd.Flags().Bool("json", false, "Print the profile as JSON")
	profileHistoryCmd.Flags().Int("limit", 10, "Maximum entries (0 = all)")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileHistoryCmd)
}
