package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/narray-ml/narray/internal/manifest"
	"github.com/narray-ml/narray/narray"
	"github.com/narray-ml/narray/ndfile"
)

var manifestPath string

var createCmd = &cobra.Command{
	Use:   "create [output.nda]",
	Short: "Create a .nda file from a YAML manifest",
	Long: `Materializes the datasets described by a YAML manifest into a .nda
container file. Each dataset is zero-filled unless the manifest requests a
constant fill or a sequential ramp.

Example:
  narray create --manifest datasets.yaml out.nda`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest describing the datasets (required)")
	_ = createCmd.MarkFlagRequired("manifest")
}

func runCreate(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	w, err := ndfile.Create(args[0])
	if err != nil {
		return err
	}
	defer w.Close()

	for _, spec := range m.Datasets {
		if err := appendFromSpec(w, spec); err != nil {
			return fmt.Errorf("dataset %q: %w", spec.Name, err)
		}
		logger.Debug("queued dataset",
			zap.String("name", spec.Name),
			zap.String("dtype", spec.DType),
			zap.Ints("shape", spec.Shape))
	}

	if err := w.Commit(m.Metadata); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	logger.Info("wrote container",
		zap.String("path", args[0]),
		zap.Int("datasets", len(m.Datasets)))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d datasets)\n", args[0], len(m.Datasets))
	return nil
}

// appendFromSpec dispatches on the manifest dtype to materialize one
// dataset with concrete element types.
func appendFromSpec(w *ndfile.Writer, spec manifest.DatasetSpec) error {
	dtype, ok := narray.ParseDataType(spec.DType)
	if !ok {
		return fmt.Errorf("unknown dtype %q", spec.DType)
	}
	switch dtype {
	case narray.Float32:
		return materialize[float32](w, spec)
	case narray.Float64:
		return materialize[float64](w, spec)
	case narray.Int32:
		return materialize[int32](w, spec)
	case narray.Int64:
		return materialize[int64](w, spec)
	case narray.Uint8:
		return materialize[uint8](w, spec)
	default:
		return fmt.Errorf("unknown dtype %q", spec.DType)
	}
}

// materialize builds the dataset contents and queues it on the writer.
func materialize[T narray.Number](w *ndfile.Writer, spec manifest.DatasetSpec) error {
	d := narray.NewDense[T](spec.Shape...)
	switch {
	case spec.Fill != nil:
		d.Fill(T(*spec.Fill))
	case spec.Ramp:
		data := d.Data()
		for i := range data {
			data[i] = T(i)
		}
	}
	return ndfile.AppendDense(w, spec.Name, d, spec.Attrs)
}
