package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/iupac/pkg/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate [compound...]",
	Short: "Cross-validate catalog compounds against their InChI",
	Long: `Build the graph of each catalog compound from its IUPAC name and check
that it is isomorphic to a hydrogen placement of its InChI. All compounds are
checked when none are named.

Examples:
  iupac validate
  iupac validate caffeine adenine
  iupac validate --config iupac.yaml`,
	RunE: runValidate,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog compounds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, err := loadCatalog()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, c := range repo.All() {
			fmt.Fprintf(out, "  %-12s %s\n", c.Name, c.IUPAC)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd, listCmd)
}

func loadCatalog() (*catalog.MemoryRepository, error) {
	repo := catalog.NewMemoryRepository(logger)
	if !cfg.Catalog.NoDefaults {
		defaults, err := catalog.Default(logger)
		if err != nil {
			return nil, err
		}
		for _, c := range defaults.All() {
			if err := repo.Add(c); err != nil {
				return nil, err
			}
		}
	}
	if cfg.Catalog.Dir != "" {
		if err := repo.LoadDir(cfg.Catalog.Dir); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	repo, err := loadCatalog()
	if err != nil {
		return err
	}

	compounds := repo.All()
	if len(args) > 0 {
		compounds = compounds[:0]
		for _, name := range args {
			c, err := repo.Lookup(name)
			if err != nil {
				return err
			}
			compounds = append(compounds, c)
		}
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, c := range compounds {
		res := catalog.Validate(c, translator)
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintf(out, "FAIL  %-12s %v\n", c.Name, res.Err)
		case !res.Matched:
			failed++
			fmt.Fprintf(out, "FAIL  %-12s %s does not match %s\n", c.Name, res.Formula, c.InChI)
		default:
			fmt.Fprintf(out, "PASS  %-12s %s (%d isomer(s))\n", c.Name, res.Formula, res.Isomers)
		}
		logger.Debug("validated", zap.String("compound", c.Name), zap.Bool("matched", res.Matched))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d compound(s) failed validation", failed, len(compounds))
	}
	return nil
}
