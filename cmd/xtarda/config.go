package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/xtarda-rescue/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the lander configuration as YAML after the config file,
difficulty preset and --no-penalty have been applied.

Config search order:
  --config <path>, $XTARDA_CONFIG, ~/.xtarda/lander.yaml,
  ./configs/lander.yaml, built-in defaults

Examples:
  xtarda config --difficulty hard
  xtarda config --defaults > ~/.xtarda/lander.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	out, err := landerConfig.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)

	dm := config.NewDifficultyManager(landerConfig)
	fmt.Println()
	if dm.IsProgressive() {
		fmt.Println("# Level curve")
	} else {
		fmt.Println("# Level curve (fixed speed)")
	}
	for level := 1; level <= 5; level++ {
		fmt.Printf("#   level %d: %d asteroids, max speed %.2f\n",
			level, dm.AsteroidCount(level), dm.MaxSpeed(level))
	}
}
