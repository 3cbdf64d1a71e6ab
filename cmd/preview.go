package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/rlemos/provinha/internal/content"
	"github.com/rlemos/provinha/internal/quiz"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <content.json>",
	Short: "Print how a content file will play (no database, no scoring)",
	Long: `Normalize a content file and print every playable question with its
options and correct answer marked.

Useful for checking content before handing it to a learner: records that
would be skipped are listed with the reason, and legacy fill questions
show the distractors the player will synthesize. Pass --seed to get the
same option shuffle each run.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Uint64("seed", 0, "Shuffle seed (0 = random)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	seed, _ := cmd.Flags().GetUint64("seed")

	item, err := content.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, 0))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), 0))
	}

	fmt.Printf("%s  (%s", item.Title, item.Subject)
	if item.Topic != "" {
		fmt.Printf(" / %s", item.Topic)
	}
	fmt.Printf(")\n%d records\n\n", len(item.Questions))

	playable := 0
	for i, rec := range item.Questions {
		q := quiz.Normalize(rec, rng)
		if q == nil {
			fmt.Printf("── Record %d: SKIPPED (not renderable) ──\n\n", i+1)
			continue
		}
		playable++

		fmt.Printf("── Question %d ──\n", playable)
		fmt.Println(q.Text)

		if q.Format == quiz.FormatDiscursive {
			fmt.Println("  (written answer, corrected by AI)")
			if q.Guideline != "" {
				fmt.Printf("  guideline: %s\n", q.Guideline)
			}
		} else {
			for j, opt := range q.Options {
				mark := " "
				if j == q.CorrectIndex {
					mark = "✓"
				}
				fmt.Printf("  %s %c) %s\n", mark, 'A'+j, opt)
			}
		}
		if q.Explanation != "" {
			fmt.Printf("  explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── %d of %d records playable ──\n", playable, len(item.Questions))
	return nil
}
