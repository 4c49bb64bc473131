package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Avuorina/MOBgenerator/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "mobgen",
	Short: "mobgen generates Minecraft RPG datapack files from a spreadsheet",
	Long: `mobgen reads mob and item definitions from a Google Sheets CSV export
and generates the datapack files (mcfunctions, loot tables) the RPG engine
loads on /reload.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the mobgen config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
