package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/iupac/pkg/inchi"
)

var inchiCmd = &cobra.Command{
	Use:   "inchi <inchi>",
	Short: "Summarize a standard InChI string",
	Long: `Parse the formula, connection and hydrogen layers of a standard InChI
and print the atom and bond counts and the number of mobile hydrogen
placements.

Examples:
  iupac inchi 'InChI=1S/C5H5N5/c6-4-3-5(9-1-7-3)10-2-8-4/h1-2H,(H3,6,7,8,9,10)'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := inchi.Parse(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Formula:   %s\n", in.Layers.Formula)
		fmt.Fprintf(out, "Atoms:     %d heavy, %d hydrogen\n", len(in.Atoms), in.HydrogenCount())
		fmt.Fprintf(out, "Bonds:     %d\n", len(in.Bonds))
		fmt.Fprintf(out, "Mobile:    %d group(s)\n", len(in.Mobile))
		fmt.Fprintf(out, "Isomers:   %d\n", in.CountIsomers())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inchiCmd)
}
