package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/narray-ml/narray/narray"
	"github.com/narray-ml/narray/ndfile"
)

var statsDataset string

var statsCmd = &cobra.Command{
	Use:   "stats [file.nda]",
	Short: "Print sum/mean/min/max for the datasets of a .nda file",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsDataset, "dataset", "d", "", "restrict to one dataset")
}

func runStats(cmd *cobra.Command, args []string) error {
	r, err := ndfile.Open(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	found := false

	for _, ds := range r.Datasets() {
		if statsDataset != "" && ds.Name != statsDataset {
			continue
		}
		found = true

		line, err := summarize(r, ds)
		if err != nil {
			return fmt.Errorf("dataset %q: %w", ds.Name, err)
		}
		fmt.Fprintf(out, "%s %s\n", bold.Sprintf("%-20s", ds.Name), line)
	}

	if statsDataset != "" && !found {
		return fmt.Errorf("%w: %q", ndfile.ErrDatasetNotFound, statsDataset)
	}
	return nil
}

// summarize dispatches on the stored dtype and reduces the dataset.
func summarize(r *ndfile.Reader, ds ndfile.DatasetMeta) (string, error) {
	dtype, ok := narray.ParseDataType(ds.DType)
	if !ok {
		return "", fmt.Errorf("unknown dtype %q", ds.DType)
	}
	switch dtype {
	case narray.Float32:
		return reduceAll[float32](r, ds.Name)
	case narray.Float64:
		return reduceAll[float64](r, ds.Name)
	case narray.Int32:
		return reduceAll[int32](r, ds.Name)
	case narray.Int64:
		return reduceAll[int64](r, ds.Name)
	case narray.Uint8:
		return reduceAll[uint8](r, ds.Name)
	default:
		return "", fmt.Errorf("unknown dtype %q", ds.DType)
	}
}

// reduceAll loads a dataset as a flat array and renders its reductions.
func reduceAll[T narray.Number](r *ndfile.Reader, name string) (string, error) {
	a, err := ndfile.LoadArray[T](r, name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("n=%d sum=%v mean=%v min=%v max=%v",
		a.Len(), a.Sum(), a.Mean(), a.Min(), a.Max()), nil
}
