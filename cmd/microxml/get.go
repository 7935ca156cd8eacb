package main

import (
	"fmt"

	"github.com/eolymp/go-microxml"
	"github.com/spf13/cobra"
)

// getCmd looks up a single node by slash-separated path and prints its text
var getCmd = &cobra.Command{
	Use:   "get <file> <path>",
	Short: "Look up a node by path and print its text content",
	Long:  "Resolves a slash-separated path like \"config/server/port\" against the document and prints the text of the node it leads to. A leading \"*/\" on a segment matches the following name at any depth.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := load(args[0])
		if err != nil {
			return err
		}

		node := microxml.FindPath(root, args[1])
		if node == nil {
			return fmt.Errorf("nothing matches path %q", args[1])
		}

		fmt.Println(microxml.String(node))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
