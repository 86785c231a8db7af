package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/iupac/internal/config"
	"github.com/OpenTraceLab/iupac/pkg/iupac"
)

var (
	// Global flags
	verbose    bool
	configPath string
	format     string

	cfg        *config.Config
	logger     = zap.NewNop()
	translator = iupac.NewTranslator(nil)
)

var rootCmd = &cobra.Command{
	Use:   "iupac <name>",
	Short: "IUPAC name to molecular graph translator",
	Long: `Translate systematic IUPAC organic names into molecular graphs and
print them as Graphviz DOT (render with neato) or as a Hill formula.

Examples:
  iupac 'Propan-2-ol'                          # DOT graph of isopropanol
  iupac --format formula '9H-Purin-6-amine'    # C5H5N5
  iupac validate                               # check the catalog against InChI`,
	Version:           "0.1.0",
	Args:              cobra.ExactArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (YAML)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot or formula")
}

func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if format != "" {
		c.Output.Format = format
		if err := c.Validate(); err != nil {
			return err
		}
	}

	l, err := c.Log.NewLogger(verbose)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	translator = iupac.NewTranslator(logger)
	logger.Debug("configured",
		zap.String("config", configPath),
		zap.String("format", cfg.Output.Format),
		zap.String("catalog", cfg.Catalog.Dir))
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	g, err := translator.Translate(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if cfg.Output.Format == config.FormatFormula {
		_, err = fmt.Fprintln(out, g.Formula())
		return err
	}
	return g.WriteDOT(out)
}
