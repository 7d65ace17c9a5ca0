package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/narray-ml/narray/ndfile"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [file.nda]",
	Short: "Validate the layout and data checksum of a .nda file",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	r, err := ndfile.Open(args[0])
	if err != nil {
		logger.Warn("verification failed", zap.String("path", args[0]), zap.Error(err))
		return fmt.Errorf("%s: %w", args[0], err)
	}
	defer r.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d datasets, checksum OK\n",
		color.GreenString("ok"), args[0], len(r.Datasets()))
	return nil
}
