package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "nightsky",
	Short: "Turn text into a night sky of constellations",
	Long: `Nightsky reads text and draws it as a night sky. Every paragraph becomes a
constellation and every word a star, placed by walking in the direction of
its part of speech and colored by it.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// persistentKeys maps root flags onto config keys.
var persistentKeys = map[string]string{
	"verbose":          "verbose",
	"tagger":           "tagger",
	"strategy":         "layout.strategy",
	"edge-multiplier":  "layout.edge_multiplier",
	"margin":           "layout.margin",
	"shape-by-class":   "style.shape_by_class",
	"background-stars": "style.background_stars",
	"seed":             "style.seed",
	"size":             "render.size",
	"telemetry":        "telemetry.path",
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .nightsky.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.String("tagger", "prose", "part-of-speech tagger: prose or lexicon")
	pf.String("strategy", "walking", "star placement: walking or radial")
	pf.Float64("edge-multiplier", 1.5, "walking distance per character")
	pf.Float64("margin", 10, "keep stars this many percent from the edge")
	pf.Bool("shape-by-class", false, "draw verbs and modifiers as five-point stars")
	pf.Int("background-stars", 0, "number of decorative background stars")
	pf.Uint64("seed", 1, "seed for background stars")
	pf.Int("size", 1000, "SVG canvas size in pixels")
	pf.String("telemetry", "", "append JSONL telemetry events to this file")

	for flag, key := range persistentKeys {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".nightsky")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("NIGHTSKY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
