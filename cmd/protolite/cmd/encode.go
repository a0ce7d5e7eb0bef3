package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gowire/protolite"
)

var (
	encodeID   int32
	encodeBody string
	encodeTags []string
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a note into hex-encoded wire bytes",
	Long: `Encode a note into hex-encoded wire bytes.

Example:
  protolite encode --id 7 --body "hello" --tag a --tag b`,
	RunE: func(cmd *cobra.Command, args []string) error {
		value := protolite.NewBuffer()
		_, err := noteSchema.Encode(map[string]interface{}{
			"id":   encodeID,
			"body": encodeBody,
			"tags": encodeTags,
		}, value)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		fmt.Println(value.ToHex())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().Int32Var(&encodeID, "id", 0, "note id")
	encodeCmd.Flags().StringVar(&encodeBody, "body", "", "note body")
	encodeCmd.Flags().StringArrayVar(&encodeTags, "tag", nil, "a tag, may be repeated")
}
