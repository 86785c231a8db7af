package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/iupac/pkg/iupac"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <name>",
	Short: "Print the token stream of a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens, err := translator.Tokens(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, tok := range tokens {
			fmt.Fprintln(out, tok)
		}
		return nil
	},
}

var astCmd = &cobra.Command{
	Use:   "ast <name>",
	Short: "Print the syntax tree of a name as an s-expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := translator.Dump(args[0])
		if err != nil {
			return err
		}
		if verbose {
			leaves, err := iupac.CountLeaves(expr)
			if err != nil {
				return fmt.Errorf("failed to re-read tree: %w", err)
			}
			logger.Debug("tree", zap.Int("leaves", leaves))
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), expr)
		return err
	},
}

var formulaCmd = &cobra.Command{
	Use:   "formula <name>",
	Short: "Print the Hill formula of a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := translator.Translate(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Formula())
		return err
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd, astCmd, formulaCmd)
}
