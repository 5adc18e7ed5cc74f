package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "naijavibe <script-file>",
		Short:        "Turn a short script into a Naija scene package for image and video generators",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.PersistentFlags().String("config", "", "Profile file (.yaml, .yml or .toml); defaults to $NAIJAVIBE_CONFIG")

	// Visible flags
	root.Flags().String("out", "", "Output directory")
	root.Flags().String("provider", "", "Script oracle: gemini, openrouter or replay")
	root.Flags().String("replay", "", "Saved model response for the replay provider")
	root.Flags().String("language", "", "Dialogue language: pidgin, mixed or english")
	root.Flags().String("mode", "", "Story mode: single or multi")
	root.Flags().String("color", "", "Color grading: default, luxury or premium")
	root.Flags().String("animation", "", "Animation style: 2d_lofi or 3d_cgi")
	root.Flags().String("aesthetic", "", "Motion aesthetic: 2D or 3D")
	root.Flags().StringSlice("frames", nil, "Reference frames for visual analysis (max 4)")
	root.Flags().String("seo-csv", "", "SEO title table (id,naija_title,tags,hashtags)")
	root.Flags().Int("seo-row", 0, "Force an SEO table row")
	root.Flags().Bool("slang", false, "Rewrite the script with Naija slang before transforming")
	root.Flags().Bool("double-spaced", false, "Separate bulk prompt lines with a blank line")

	// Hidden tuning flags (internal)
	root.Flags().Uint64("seed", 0, "Continuity seed (0 = random)")
	root.Flags().Float64("rpm", 0, "Oracle requests per minute (0 = profile value)")
	_ = root.Flags().MarkHidden("seed")
	_ = root.Flags().MarkHidden("rpm")

	root.AddCommand(newTitlesCmd(), newRecreateCmd())
	return root
}

func newRecreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recreate <transcript-file>",
		Short: "Retell a story transcript as a long and a short Naija video package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return recreate(cmd, args[0])
		},
	}
	cmd.Flags().String("out", "", "Output directory")
	cmd.Flags().String("provider", "", "Story recreator: gemini, openrouter or replay")
	cmd.Flags().String("replay", "", "Saved model response for the replay provider")
	cmd.Flags().String("language", "", "Dialogue language: pidgin, mixed or english")
	cmd.Flags().String("color", "", "Color grading: default, luxury or premium")
	cmd.Flags().String("animation", "", "Animation style: 2d_lofi or 3d_cgi")
	cmd.Flags().String("aesthetic", "", "Motion aesthetic: 2D or 3D")
	cmd.Flags().StringSlice("frames", nil, "Reference frames for visual analysis (max 4)")
	cmd.Flags().Bool("double-spaced", false, "Separate bulk prompt lines with a blank line")

	cmd.Flags().Uint64("seed", 0, "Continuity seed (0 = random)")
	cmd.Flags().Float64("rpm", 0, "Oracle requests per minute (0 = profile value)")
	_ = cmd.Flags().MarkHidden("seed")
	_ = cmd.Flags().MarkHidden("rpm")
	return cmd
}

func newTitlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "titles",
		Short: "List the titles of the SEO table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return titles(cmd)
		},
	}
	cmd.Flags().String("seo-csv", "", "SEO title table (id,naija_title,tags,hashtags)")
	return cmd
}
