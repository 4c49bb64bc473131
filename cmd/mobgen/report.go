package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the summary of the last generation run",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReport(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	md, err := os.ReadFile(reportPath(cfg))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no report yet; run 'mobgen generate' first")
		}
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // detect light/dark background
	)
	if err != nil {
		return err
	}
	out, err := r.Render(string(md))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
