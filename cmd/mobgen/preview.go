package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Avuorina/MOBgenerator/internal/mctext"
)

var previewCmd = &cobra.Command{
	Use:   "preview <text>",
	Short: "Render &-coded text the way it will look in game",
	Long: `Parses legacy color codes ("&c", "&l", ...) in the given text and
renders the result in the terminal. With --json, prints the rich-text
component list the generators would emit instead.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text := strings.Join(args, " ")
		color, _ := cmd.Flags().GetString("color")
		italic, _ := cmd.Flags().GetBool("italic")

		segs := mctext.Parse(text, color, italic)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			fmt.Println(mctext.ComponentList(segs))
			return
		}
		fmt.Println(mctext.Render(segs, termenv.ColorProfile()))
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().String("color", "white", "Default color for unformatted text")
	previewCmd.Flags().Bool("italic", false, "Default italic state")
	previewCmd.Flags().Bool("json", false, "Print rich-text components instead of rendering")
}
