package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/cogscreen/internal/games"
	"github.com/spf13/cobra"
)

// taskSet is the generated content of one round of games.
type taskSet struct {
	Seed         uint64                 `json:"seed"`
	Words        []string               `json:"words"`
	TargetLetter string                 `json:"targetLetter"`
	Stimuli      []games.Stimulus       `json:"stimuli"`
	Processing   []games.ProcessingTask `json:"processing"`
}

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Generate game content from a seed",
	Long:  "Generate word lists, attention streams and processing tasks. The same seed always yields the same tasks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetUint64("seed")
		words, _ := cmd.Flags().GetInt("words")
		stimuli, _ := cmd.Flags().GetInt("stimuli")
		target, _ := cmd.Flags().GetString("target")
		ratio, _ := cmd.Flags().GetFloat64("ratio")
		trials, _ := cmd.Flags().GetInt("trials")
		asJSON, _ := cmd.Flags().GetBool("json")

		if !cmd.Flags().Changed("seed") {
			seed = uint64(time.Now().UnixNano())
		}
		if trials == 0 {
			trials = cfg.Policy.TargetTrials
		}
		if ratio < 0 || ratio > 1 {
			return fmt.Errorf("--ratio must be within [0, 1]")
		}

		g := games.NewGenerator(seed)
		set := taskSet{
			Seed:       seed,
			Words:      g.WordList(words),
			Stimuli:    g.AttentionStream(stimuli, strings.ToUpper(target), ratio),
			Processing: g.ProcessingTasks(trials),
		}
		for _, st := range set.Stimuli {
			if st.IsTarget {
				set.TargetLetter = st.Letter
				break
			}
		}

		w := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(set)
		}

		fmt.Fprintf(w, "Seed %d\n\n", set.Seed)
		fmt.Fprintf(w, "Words: %s\n\n", strings.Join(set.Words, ", "))

		letters := make([]string, len(set.Stimuli))
		for i, st := range set.Stimuli {
			letters[i] = st.Letter
		}
		fmt.Fprintf(w, "Attention (target %s): %s\n\n", set.TargetLetter, strings.Join(letters, " "))

		fmt.Fprintf(w, "%-3s  %-11s  %-3s  %-6s  %-45s  %s\n", "#", "Type", "C", "Switch", "Prompt", "Answer")
		fmt.Fprintln(w, strings.Repeat("─", 90))
		for i, t := range set.Processing {
			sw := ""
			if t.Switch {
				sw = "yes"
			}
			fmt.Fprintf(w, "%-3d  %-11s  %-3d  %-6s  %-45s  %s\n", i+1, t.TaskType, t.Complexity, sw, t.Prompt, t.Answer)
		}
		return nil
	},
}

func init() {
	tasksCmd.Flags().Uint64("seed", 0, "Generator seed (default: random)")
	tasksCmd.Flags().Int("words", 5, "Words in the recall list")
	tasksCmd.Flags().Int("stimuli", 30, "Letters in the attention stream")
	tasksCmd.Flags().String("target", "X", "Target letter (empty picks one)")
	tasksCmd.Flags().Float64("ratio", 0.3, "Share of target letters")
	tasksCmd.Flags().Int("trials", 0, "Processing tasks (default: policy target trials)")
	tasksCmd.Flags().Bool("json", false, "Print the tasks as JSON")
}
