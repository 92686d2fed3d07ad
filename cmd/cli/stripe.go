package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/stripe/service"
)

func stripeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stripe",
		Short: "Stripe account setup",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "setup",
		Short: "Create the tier products and prices, and print their env lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logging, conn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer logging.Close()
			defer conn.Close()

			stripeClient, err := service.NewStripeClient(ctx)
			if err != nil {
				return err
			}

			prices, err := service.NewStripeService(logger.FromContext, conn, stripeClient).SetupProducts(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "# add to your environment")

			for _, p := range prices {
				fmt.Fprintf(out, "STRIPE_PRICE_%s=%s\n", strings.ToUpper(p.Tier), p.PriceID)
			}

			return nil
		},
	})

	return cmd
}
