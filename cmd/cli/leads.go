package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gettupp/backoffice/leads/service"
	"github.com/gettupp/backoffice/logger"
)

func leadsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Lead maintenance",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "process",
		Short: "Normalise instagram handles and venue tags of new leads",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logging, conn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer logging.Close()
			defer conn.Close()

			n, err := service.NewLeadsService(logger.FromContext, conn).ProcessNewLeads(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d leads processed\n", n)

			return nil
		},
	})

	return cmd
}
