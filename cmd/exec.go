package cmd

import (
	"errors"
	"io"
	"os"

	"balebridge/internal/adapters/file"
	"balebridge/internal/core/domain"
	"balebridge/internal/core/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var batchPath string

var execCmd = &cobra.Command{
	Use:   "exec",
	Short: "Execute one batch of bot API operations",
	Long: "Reads a batch ({resource, operation, parameters, items}) as JSON from --input or stdin, " +
		"runs the operation once per item and prints one record per line.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if batchPath != "" && batchPath != "-" {
			f, err := os.Open(batchPath)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		batch, err := file.ReadBatch(in)
		if err != nil {
			return err
		}

		c, err := newClients(cfg)
		if err != nil {
			return err
		}

		dispatcher, err := service.NewDispatcher(c.bot, c.raw, c.resolver,
			service.WithStrictOperations(cfg.Dispatcher.Strict))
		if err != nil {
			return err
		}

		records, execErr := dispatcher.Execute(cmd.Context(), batch)

		out := file.NewWriterSink(cmd.OutOrStdout())
		for _, record := range records {
			if err := out.Emit(cmd.Context(), record); err != nil {
				return err
			}
		}

		var batchErr *domain.BatchError
		if errors.As(execErr, &batchErr) {
			for _, f := range batchErr.Failures {
				log.Error().Int("item", f.Index).Err(f.Err).Msg("item failed")
			}
		}

		return execErr
	},
}

func init() {
	execCmd.Flags().StringVarP(&batchPath, "input", "i", "-", "batch JSON file, - for stdin")
	rootCmd.AddCommand(execCmd)
}
