// Package cmd holds vf2ctl's cobra command tree.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd is the base command; vf2ctl is a library demo, not a service,
// so it carries no persistent daemon flags, only the shared --config path.
var rootCmd = &cobra.Command{
	Use:   "vf2ctl",
	Short: "Run VF2 subgraph isomorphism matching between two graph files",
	Long: `vf2ctl loads a pattern graph and a host graph from YAML definition
files and runs the vf2 matching engine against them, printing every
mapping discovered as YAML.`,
}

// Execute runs the root command, exiting with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to vf2ctl.yaml (default: ./vf2ctl.yaml if present)")
}

// BinName returns the base name of the current executable, used in
// generated help and example text.
func BinName() string {
	return filepath.Base(os.Args[0])
}
