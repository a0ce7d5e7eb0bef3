package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the built-in demo schema",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("note:")
		fmt.Println("  id   int32           field 1")
		fmt.Println("  body string          field 2")
		fmt.Println("  tags repeated string field 3 (expanded)")
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
