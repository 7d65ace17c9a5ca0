package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/narray-ml/narray/narray"
	"github.com/narray-ml/narray/ndfile"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file.nda]",
	Short: "List the datasets and metadata of a .nda file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	r, err := ndfile.Open(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	h := r.Header()

	fmt.Fprintf(out, "%s %s (format v%d, written by narray %s)\n",
		bold.Sprint("file:"), args[0], h.FormatVersion, h.Library)

	if len(h.Metadata) > 0 {
		fmt.Fprintln(out, bold.Sprint("metadata:"))
		for _, k := range sortedKeys(h.Metadata) {
			fmt.Fprintf(out, "  %s = %s\n", k, h.Metadata[k])
		}
	}

	fmt.Fprintln(out, bold.Sprint("datasets:"))
	for _, ds := range r.Datasets() {
		fmt.Fprintf(out, "  %-20s %-8s %-16s %10d bytes\n",
			ds.Name, ds.DType, narray.Shape(ds.Shape).String(), ds.Size)
		for _, k := range sortedKeys(ds.Attrs) {
			fmt.Fprintf(out, "    @%s = %s\n", k, ds.Attrs[k])
		}
	}
	return nil
}
