package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scenes/internal/config"
	"github.com/vovakirdan/tui-scenes/internal/registry"
)

var flagEmbedded bool

var configCmd = &cobra.Command{
	Use:   "config <scene>",
	Short: "Print a scene's effective configuration",
	Long: `Print the configuration a scene would be built with, as YAML.

The configuration is resolved like 'play' does: --config, then
~/.scenes/configs/<id>.yaml, then ./configs/<id>.yaml, then the built-in
defaults. The output is a complete config file and can be edited and
passed back with 'scenes play <id> --config <file>'.

Examples:
  scenes config xmas
  scenes config mems --config ./dense-mems.yaml
  scenes config ufo --embedded > ~/.scenes/configs/ufo.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
	configCmd.Flags().BoolVar(&flagEmbedded, "embedded", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, args []string) {
	sceneID := args[0]
	if !registry.Exists(sceneID) {
		unknownScene(sceneID)
	}

	if flagEmbedded {
		os.Stdout.Write(config.GetDefaultYAML(sceneID))
		return
	}

	cfg, err := config.Load(sceneID, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
