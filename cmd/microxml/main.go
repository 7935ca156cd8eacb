package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/eolymp/go-microxml"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "microxml",
	Short:         "Query micro-XML documents from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// load parses the document in the given file and returns its root element
func load(path string) (*microxml.Node, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	root, err := microxml.Parse(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}

	return root, nil
}
