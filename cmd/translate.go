package cmd

import (
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"hasm/pkg/translator"
	"hasm/pkg/utils"
)

func newTranslateCmd() *cobra.Command {
	var (
		output string
		indent int
		opts   translator.Options
	)

	translateCmd := &cobra.Command{
		Use:   "translate sourceFile",
		Short: "Translate one hasm source file",
		Long: `Translate reads exactly one hasm source file ("-" for standard input)
and writes the lowered assembly to standard output or to the file named
by --output. Translation stops at the first error and writes nothing.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Indent = strings.Repeat(" ", indent)
			glog.V(1).Infof("translating %s with %+v", args[0], opts)

			out, err := translator.TranslateFile(args[0], cmd.InOrStdin(), opts)
			if err != nil {
				return err
			}
			return utils.WriteOutput(output, out, cmd.OutOrStdout())
		},
	}

	translateCmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: standard output)")
	translateCmd.Flags().IntVar(&indent, "indent", 0, "spaces to indent each nested block level")
	translateCmd.Flags().BoolVar(&opts.InheritMacros, "inherit-macros", false, "let nested blocks see the macros defined around them")
	translateCmd.Flags().BoolVar(&opts.StrictBraces, "strict", false, "reject stray and unclosed braces")
	return translateCmd
}
