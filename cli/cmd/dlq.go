package cmd

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/telhawk-systems/telhawk-audit/cli/pkg/output"
	"github.com/telhawk-systems/telhawk-audit/common/dlq"
	"github.com/telhawk-systems/telhawk-audit/common/logging"
)

var dlqCmd = &cobra.Command{
	Use:   "dlq",
	Short: "Inspect the decoder dead-letter queue",
	Long:  "List, delete and purge envelopes the decoder service could not turn into records.",
}

var dlqListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dead-lettered envelopes",
	RunE: func(cmd *cobra.Command, args []string) error {
		queue, err := openQueue(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		entries, err := queue.List(cmd.Context(), limit)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if handled, err := output.Structured(w, outputFormat(cmd), entries); handled || err != nil {
			return err
		}

		table := output.NewTable([]string{"ID", "TIME", "SOURCE", "BYTES", "ERROR"})
		for _, e := range entries {
			table.AddRow([]string{
				e.ID,
				e.Timestamp.Format(time.RFC3339),
				e.Source,
				strconv.Itoa(len(e.Payload)),
				e.Error,
			})
		}
		table.Render(w)
		return nil
	},
}

var dlqDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete dead-lettered envelopes by id",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		queue, err := openQueue(cmd)
		if err != nil {
			return err
		}
		for _, id := range args {
			if err := queue.Delete(cmd.Context(), id); err != nil {
				return err
			}
		}
		output.Success("Deleted %d entries", len(args))
		return nil
	},
}

var dlqPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every dead-lettered envelope",
	RunE: func(cmd *cobra.Command, args []string) error {
		queue, err := openQueue(cmd)
		if err != nil {
			return err
		}
		deleted, err := queue.Purge(cmd.Context())
		if err != nil {
			return err
		}
		output.Success("Purged %d entries", deleted)
		return nil
	},
}

func openQueue(cmd *cobra.Command) (*dlq.Queue, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = cfg.DLQ.BasePath
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), logging.ParseLevel("warn"), "text")
	return dlq.NewQueue(dir, logger)
}

func init() {
	rootCmd.AddCommand(dlqCmd)
	dlqCmd.AddCommand(dlqListCmd)
	dlqCmd.AddCommand(dlqDeleteCmd)
	dlqCmd.AddCommand(dlqPurgeCmd)

	dlqCmd.PersistentFlags().String("dir", "", "DLQ directory (default from config)")
	dlqListCmd.Flags().Int("limit", 0, "maximum entries to list (0 for all)")
}
