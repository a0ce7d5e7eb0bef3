package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "protolite",
	Short: "Encode and decode messages against a built-in demo schema",
	Long: `protolite is a small command-line driver around the protolite
wire codec. It encodes and decodes against a fixed demo "note" schema
(id int32, body string, repeated tags string) so the encode/decode/describe
round trip can be exercised without writing Go.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noteSchemaErr != nil {
			return fmt.Errorf("demo schema failed to build: %w", noteSchemaErr)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen
// once to rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
