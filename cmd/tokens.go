package cmd

import (
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"hasm/pkg/translator"
	"hasm/pkg/utils"
)

func newTokensCmd() *cobra.Command {
	var (
		noColor bool
		macros  bool
	)

	tokensCmd := &cobra.Command{
		Use:   "tokens sourceFile",
		Short: "Dump the token stream of a hasm source file",
		Long: `Tokens prints every token of the source file together with the
statement kind it opens, as the translator sees them before any block
is extracted. With --macros it also prints the top-level macro table.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := utils.ReadSource(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			printer := pp.New()
			printer.SetOutput(cmd.OutOrStdout())
			printer.SetColoringEnabled(!noColor)

			if _, err := printer.Println(translator.Tokens(src)); err != nil {
				return err
			}
			if !macros {
				return nil
			}

			tr := translator.New(src, translator.Options{})
			if _, err := tr.Translate(); err != nil {
				return err
			}
			_, err = printer.Println(tr.Macros().Map())
			return err
		},
	}

	tokensCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	tokensCmd.Flags().BoolVar(&macros, "macros", false, "also print the top-level macro table")
	return tokensCmd
}
