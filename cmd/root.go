// Package cmd holds the hasm command line.
package cmd

import (
	"flag"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

func init() {
	// glog defaults to log files under $TMPDIR; a translator belongs on stderr.
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Warningf("could not default -logtostderr: %v", err)
	}
}

// NewRootCmd builds the hasm command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hasm",
		Short: "Translate hasm programs into NASM x86-64 assembly",
		Long: `Hasm is a source-to-source translator for a small brace-structured
assembly language. It expands $define macros, flattens $section and label
blocks, and lowers move, call and stack-frame pseudo-instructions into
assembly text for a native assembler such as nasm.

Verbose logging is controlled with the glog flags, e.g. --v=2.
`,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(newTranslateCmd())
	rootCmd.AddCommand(newTokensCmd())
	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	defer glog.Flush()
	if err := NewRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}
