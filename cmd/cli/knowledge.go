package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/gettupp/backoffice/knowledge/service"
	"github.com/gettupp/backoffice/logger"
)

func knowledgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knowledge",
		Short: "Knowledge base maintenance",
	}

	cmd.AddCommand(migrateCmd())

	return cmd
}

func migrateCmd() *cobra.Command {
	var (
		file      string
		batchSize int
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Import a JSON export into the knowledge_base collection",
		Long: `Import a JSON array of knowledge nodes into Firestore.

Nodes whose id already exists are skipped. Missing fields get the same defaults
as nodes created from the admin, and invalid nodes are reported at the end.

Examples:
  gettupp knowledge migrate --file knowledge.json --dry-run
  gettupp knowledge migrate --file knowledge.json --batch 200`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			ctx := cmd.Context()

			logging, conn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer logging.Close()
			defer conn.Close()

			res, err := service.NewKnowledgeService(logger.FromContext, conn).Migrate(ctx, f, batchSize, dryRun)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if res.DryRun {
				fmt.Fprintln(out, "dry run, nothing was written")
			}

			fmt.Fprintf(out, "%d nodes: %d migrated in %d batches, %d skipped, %d invalid\n",
				res.Total, res.Migrated, res.Batches, res.Skipped, res.Invalid)

			if merr, ok := res.Errors.(*multierror.Error); ok {
				for _, e := range merr.Errors {
					fmt.Fprintf(out, "  invalid: %s\n", e)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path of the JSON export")
	cmd.Flags().IntVar(&batchSize, "batch", service.DefaultMigrationBatchSize, "writes per Firestore batch")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be migrated without writing")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}
