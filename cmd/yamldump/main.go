// Package main provides the CLI entry point for yamldump, a tool that
// converts JSON documents to block-style YAML.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/symfony/yaml"
)

func main() {
	var (
		inline  int
		indent  int
		offset  int
		strict  bool
		objects bool
	)

	rootCmd := &cobra.Command{
		Use:   "yamldump [flags] [file.json]",
		Short: "Convert a JSON document to block-style YAML",
		Long: `yamldump reads a JSON document from a file or standard input and renders it
as block-style YAML. The --inline flag controls how many nesting levels are
expanded as blocks before the output switches to single-line flow style.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args, inline, indent, offset, strict, objects)
		},
	}

	rootCmd.Flags().IntVar(&inline, "inline", 8, "nesting levels rendered in block style before switching to flow style")
	rootCmd.Flags().IntVar(&indent, "indent", 4, "spaces added per nesting level")
	rootCmd.Flags().IntVar(&offset, "offset", 0, "leading indentation of the top level")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "fail on values with no YAML representation")
	rootCmd.Flags().BoolVar(&objects, "objects", false, "render opaque values instead of treating them as unsupported")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string, inline, indent, offset int, strict, objects bool) error {
	if indent < 1 {
		return fmt.Errorf("indent must be greater than zero")
	}

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	dec := json.NewDecoder(in)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	d := yaml.NewDumper()
	d.SetIndentation(indent)

	opts := []yaml.DumpOption{yaml.Inline(inline), yaml.Offset(offset)}
	if strict {
		opts = append(opts, yaml.StrictTypes())
	}
	if objects {
		opts = append(opts, yaml.AllowObjects())
	}

	out, err := d.Dump(yaml.FromGoValue(doc), opts...)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(os.Stdout, out)
	return err
}
