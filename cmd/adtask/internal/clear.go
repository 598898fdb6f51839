package internal

import "github.com/spf13/cobra"

var clearBuildDirPath string

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the autodiff build directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tasker.Clear(clearBuildDirPath)
	},
}

func init() {
	clearCmd.Flags().StringVar(&clearBuildDirPath, "build-dir-path", "", "directory to remove (default: the build directory)")
	rootCmd.AddCommand(clearCmd)
}
