package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gowire/protolite"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode hex-encoded wire bytes into a note",
	Long: `Decode hex-encoded wire bytes into a note.

Example:
  protolite decode 08071205...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := protolite.BufferFromHex(args[0])
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		value, err := noteSchema.Decode(buf)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		fmt.Printf("id:   %v\n", value["id"])
		fmt.Printf("body: %v\n", value["body"])
		fmt.Printf("tags: %v\n", value["tags"])
		if unknown, ok := value["$unknown"]; ok {
			fmt.Printf("unknown fields: %v\n", unknown)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
