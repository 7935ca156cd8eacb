package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/eolymp/go-microxml"
	"github.com/spf13/cobra"
)

// findCmd prints every element matching the given constraints
var findCmd = &cobra.Command{
	Use:   "find <file>",
	Short: "Find elements by name and attribute constraints",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := load(args[0])
		if err != nil {
			return err
		}

		var constraints []microxml.Constraint
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			constraints = append(constraints, microxml.WithName(name))
		}

		if cmd.Flags().Changed("attr") {
			attr, _ := cmd.Flags().GetString("attr")
			constraints = append(constraints, microxml.WithAttr(attr))
		}

		if cmd.Flags().Changed("value") {
			if !cmd.Flags().Changed("attr") {
				return errors.New("--value requires --attr")
			}

			value, _ := cmd.Flags().GetString("value")
			constraints = append(constraints, microxml.WithValue(value))
		}

		deep, _ := cmd.Flags().GetBool("deep")

		mode, next := microxml.DescendFirst, microxml.NoDescend
		if deep {
			mode, next = microxml.DescendAll, microxml.DescendAll
		}

		found := false
		for node := microxml.FindElement(root, root, mode, constraints...); node != nil; node = microxml.FindElement(node, root, next, constraints...) {
			if err := microxml.Render(os.Stdout, node); err != nil {
				return err
			}

			fmt.Println()
			found = true
		}

		if !found {
			return errors.New("no matching elements")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().String("name", "", "Match elements with this tag name")
	findCmd.Flags().String("attr", "", "Match elements carrying this attribute")
	findCmd.Flags().String("value", "", "Match elements whose --attr attribute has this value")
	findCmd.Flags().Bool("deep", true, "Search the whole document instead of the root's direct children")
}
