package internal

import "github.com/spf13/cobra"

var wrappersDir string

var wrappersCmd = &cobra.Command{
	Use:   "wrappers",
	Short: "Generate wrappers for the binaries of the autodiff conda environment",
	Long: `Wrappers regenerates launcher scripts for the active conda environment
($CONDA_PREFIX) into --wrappers-dir, removing what was there before.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tasker.Wrappers(cmd.Context(), wrappersDir)
	},
}

func init() {
	wrappersCmd.Flags().StringVar(&wrappersDir, "wrappers-dir", "", "destination (default: <build dir>/wrappers/conda)")
	rootCmd.AddCommand(wrappersCmd)
}
