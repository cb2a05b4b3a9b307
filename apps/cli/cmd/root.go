package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	debugFlag bool

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "hitassert",
	Short: "Timestamp assertions in plain YAML.",
	Long: `hitassert evaluates temporal assertion cases declared in YAML files:
equality, ordering and equality ignoring sub-second fraction, seconds,
minutes or hours.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(cmd.ErrOrStderr())
		if debugFlag {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitUsageError)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", getEnvBool("HITASSERT_DEBUG", false), "Log debug diagnostics to stderr (env: HITASSERT_DEBUG)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
}
