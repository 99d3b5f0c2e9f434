package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/outbreak-sim/outbreak-sim/sim"
	"github.com/outbreak-sim/outbreak-sim/sim/ensemble"
)

var (
	logLevel     string // Log verbosity level
	dataPath     string // Observed daily tests/diagnoses CSV
	scenarioPath string // YAML overrides for the default configuration

	seed           int64 // Run seed
	nDays          int   // Number of simulated days
	nGuests        int   // Guest population size
	nCrew          int   // Crew population size
	seedInfections int   // Agents forced infectious at day 0
	score          bool  // Compute log-likelihood against the data
	replicas       int   // Ensemble replica count
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "outbreak-sim",
	Short: "Stochastic agent-based simulator for shipboard disease outbreaks",
}

// buildConfig layers the scenario file and explicit flags over the
// calibration defaults.
func buildConfig(cmd *cobra.Command) sim.Config {
	cfg := sim.DefaultConfig()
	if scenarioPath != "" {
		if err := ApplyScenario(&cfg, scenarioPath); err != nil {
			logrus.Fatalf("Invalid scenario file: %v", err)
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("days") {
		cfg.NDays = nDays
	}
	if cmd.Flags().Changed("guests") {
		cfg.NGuests = nGuests
	}
	if cmd.Flags().Changed("crew") {
		cfg.NCrew = nCrew
	}
	if cmd.Flags().Changed("seed-infections") {
		cfg.SeedInfections = seedInfections
	}
	return cfg
}

func loadData() *sim.Data {
	if dataPath == "" {
		return nil
	}
	data, err := sim.LoadData(dataPath)
	if err != nil {
		logrus.Fatalf("Failed to load data: %v", err)
	}
	return data
}

// runCmd executes a single simulation run.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single outbreak simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := buildConfig(cmd)
		data := loadData()

		s, err := sim.NewSim(cfg, data)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if _, err := s.Run(cfg.SeedInfections); err != nil {
			logrus.Fatalf("Run failed: %v", err)
		}
		if score {
			if _, err := s.Likelihood(); err != nil {
				logrus.Fatalf("Likelihood failed: %v", err)
			}
		}
		s.Results.Print()
	},
}

// ensembleCmd executes replicas in parallel and reports the merged results.
var ensembleCmd = &cobra.Command{
	Use:   "ensemble",
	Short: "Run parallel replicas and merge their results",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := buildConfig(cmd)
		data := loadData()

		merged, err := ensemble.MultiRun(cfg, data, replicas)
		if err != nil {
			logrus.Fatalf("Ensemble failed: %v", err)
		}
		merged.Results.Print()
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, ensembleCmd} {
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().StringVar(&dataPath, "data", "data/diamond_princess.csv", "Observed daily tests/diagnoses CSV (empty to disable testing)")
		c.Flags().StringVar(&scenarioPath, "scenario", "", "YAML file overriding the default parameters")
		c.Flags().Int64Var(&seed, "seed", 1, "Seed for the run's random stream")
		c.Flags().IntVar(&nDays, "days", 32, "Number of simulated days")
		c.Flags().IntVar(&nGuests, "guests", 2666, "Guest population size")
		c.Flags().IntVar(&nCrew, "crew", 1045, "Crew population size")
		c.Flags().IntVar(&seedInfections, "seed-infections", 1, "Agents forced infectious at day 0")

		c.PreRun = func(cmd *cobra.Command, args []string) {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				logrus.Fatalf("Invalid log level: %s", logLevel)
			}
			logrus.SetLevel(level)
		}
	}
	runCmd.Flags().BoolVar(&score, "likelihood", false, "Score the run against the observed diagnoses")
	ensembleCmd.Flags().IntVar(&replicas, "replicas", 4, "Number of parallel replicas")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(ensembleCmd)
}
