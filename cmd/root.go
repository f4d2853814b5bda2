package cmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/ripplerest/ripplerest-go/cmd/utils"
	"github.com/ripplerest/ripplerest-go/internal/apptracker"
	"github.com/ripplerest/ripplerest-go/internal/metrics"
)

var (
	globalOptions  utils.GlobalOptions
	globalCfgOpts  = utils.GlobalConfigOptions(&globalOptions)
	appTracker     apptracker.AppTracker
	metricsService metrics.MetricsService
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "ripplerest",
	Short:        "Command line client for a ripple-rest server",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := utils.DefaultPersistentPreRunE(globalCfgOpts)(cmd, args); err != nil {
			return err
		}
		log.DefaultLogger.SetLevel(globalOptions.LogLevel)

		tracker, err := utils.NewAppTracker(globalOptions)
		if err != nil {
			return err
		}
		appTracker = tracker
		metricsService = metrics.NewMetricsService(prometheus.NewRegistry())
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		err := cmd.Help()
		if err != nil {
			log.Fatalf("Error calling help command: %s", err.Error())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := finish(rootCmd.Execute())
	if err != nil {
		log.Fatalf("Error executing root command: %s", err.Error())
	}
}

// finish reports err to the tracker and writes the run's metrics.
func finish(err error) error {
	if err != nil && appTracker != nil {
		appTracker.CaptureException(err)
	}
	if metricsService != nil {
		if werr := utils.WriteMetricsTextfile(globalOptions.MetricsTextfile, metricsService.GetRegistry()); werr != nil {
			log.Errorf("Error writing metrics: %s", werr.Error())
		}
	}
	return err
}

func init() {
	log.DefaultLogger = log.New()
	cobra.EnableTraverseRunHooks = true

	if err := globalCfgOpts.Init(rootCmd); err != nil {
		log.Fatalf("Error initializing a config option: %s", err.Error())
	}

	rootCmd.AddCommand((&serverCmd{}).Command())
	rootCmd.AddCommand((&accountCmd{}).Command())
	rootCmd.AddCommand((&schemaCmd{}).Command())
	rootCmd.AddCommand((&validateCmd{}).Command())
}
