package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var toStdout bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gunzip <file>",
		Short: "Decompress a gzip file using the starflate DEFLATE decoder",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	cmd.Flags().BoolVarP(&toStdout, "stdout", "c", false, "write to standard output")
	cmd.Flags().BoolVar(&toStdout, "to-stdout", false, "alias for --stdout")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	inPath := args[0]

	raw, err := os.ReadFile(inPath)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s for reading", inPath)
	}

	log.WithField("file", inPath).Debug("decompressing")
	out, err := gunzip(raw)
	if err != nil {
		return err
	}

	if toStdout {
		_, err := os.Stdout.Write(out)
		return errors.Wrap(err, "failed to write to stdout")
	}

	outPath := decompressedPath(inPath)
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return errors.Wrapf(err, "failed to open %s for writing", outPath)
	}
	log.WithField("file", outPath).Info("wrote decompressed output")
	return nil
}

// decompressedPath derives an output filename from a gzip input path: it
// strips a ".gz" suffix, or else appends ".decompressed".
func decompressedPath(inPath string) string {
	if strings.HasSuffix(inPath, ".gz") {
		return strings.TrimSuffix(inPath, ".gz")
	}
	return inPath + ".decompressed"
}
