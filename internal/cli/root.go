package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bureauscan",
	Short: "Bureauscan - multi-bureau credit report discrepancy auditor",
	Long: `Bureauscan ingests the raw text of a multi-bureau consumer credit report
and surfaces inconsistencies between how the same account is reported by
TransUnion, Experian, and Equifax.

It extracts per-bureau account records from loosely formatted report text,
groups records belonging to the same logical account, and applies a fixed
rule catalog: date mismatches, status conflicts, credit-limit conflicts,
collections missing an original creditor or date of first delinquency, and
aged hard inquiries. Every finding carries a severity, a legal citation,
and evidence text embedding the literal conflicting values.

Bureauscan reports inconsistencies; it does not draw legal conclusions.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Bureauscan.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bureauscan v0.2.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.bureauscan/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.bureauscan")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match BUREAUSCAN_*
	viper.SetEnvPrefix("BUREAUSCAN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
