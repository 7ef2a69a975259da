package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/caltab/caltab/lut"
	"github.com/caltab/caltab/lut/registry"
)

var (
	// CLI flags for table selection
	logLevel     string // Log verbosity level
	registryPath string // YAML registry of calibration tables
	tableName    string // Table name to select from the registry
	csvPath      string // Table CSV file, overrides the registry

	// CLI flags for the standardize command
	value     float64 // Raw primary reading to standardize
	condition float64 // Secondary condition at measurement time
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "caltab",
	Short: "Standardize measurements with interpolating calibration tables",
}

// setupLogging parses the --log flag into a logrus level
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// selectTable resolves the table the flags point at: --csv wins, then
// --table from --registry, then the builtin table
func selectTable() *registry.Entry {
	if csvPath != "" {
		table, err := lut.LoadCSV(csvPath)
		if err != nil {
			logrus.Fatalf("Failed to load table CSV: %v", err)
		}
		return &registry.Entry{Name: csvPath, Table: table}
	}
	if registryPath != "" {
		reg, err := registry.Load(registryPath)
		if err != nil {
			logrus.Fatalf("Failed to load registry: %v", err)
		}
		entry, err := reg.Table(tableName)
		if err != nil {
			logrus.Fatalf("Failed to select table: %v", err)
		}
		return entry
	}
	return defaultTable()
}

// standardizeCmd runs one lookup against the selected table
var standardizeCmd = &cobra.Command{
	Use:   "standardize",
	Short: "Standardize one reading to the table's reference condition",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		entry := selectTable()
		result := entry.Table.Lookup(value, condition)
		logrus.Infof("Table %q: value %v at condition %v standardizes to %v", entry.Name, value, condition, result)

		fmt.Printf("%.2f\n", result)
	},
}

// showCmd prints the selected table, one line per secondary point: the
// condition, then the grid row readings
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the selected calibration table",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		entry := selectTable()
		if entry.Description != "" {
			fmt.Printf("# %s: %s (calibrated %s)\n", entry.Name, entry.Description, entry.Calibrated)
		}
		for i, cond := range entry.Table.SecondaryAxis() {
			row, err := entry.Table.Row(i)
			if err != nil {
				logrus.Fatalf("Failed to read table row %d: %v", i, err)
			}
			fmt.Printf("%.2f:\t", cond)
			for _, v := range row {
				fmt.Printf("%.2f\t", v)
			}
			fmt.Printf("\n")
		}
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

	// Table selection flags, shared by both subcommands
	standardizeCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	standardizeCmd.Flags().StringVar(&registryPath, "registry", "", "YAML registry of calibration tables")
	standardizeCmd.Flags().StringVar(&tableName, "table", defaultTableName, "Table name to select from the registry")
	standardizeCmd.Flags().StringVar(&csvPath, "csv", "", "Table CSV file (overrides the registry)")

	showCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	showCmd.Flags().StringVar(&registryPath, "registry", "", "YAML registry of calibration tables")
	showCmd.Flags().StringVar(&tableName, "table", defaultTableName, "Table name to select from the registry")
	showCmd.Flags().StringVar(&csvPath, "csv", "", "Table CSV file (overrides the registry)")

	// Lookup inputs
	standardizeCmd.Flags().Float64Var(&value, "value", 7.0, "Raw primary reading to standardize")
	standardizeCmd.Flags().Float64Var(&condition, "condition", 25.0, "Secondary condition the reading was taken at")

	// Attach subcommands to `root`
	rootCmd.AddCommand(standardizeCmd)
	rootCmd.AddCommand(showCmd)
}
