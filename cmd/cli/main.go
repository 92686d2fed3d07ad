package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "gettupp",
		Short:         "GettUpp back-office maintenance commands",
		Version:       common.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(knowledgeCmd())
	rootCmd.AddCommand(stripeCmd())
	rootCmd.AddCommand(leadsCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// connect opens the same connections the api uses. The caller closes them.
func connect(ctx context.Context) (*logger.Logging, *connection.Connection, error) {
	logging, err := logger.NewLogging(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing logging: %w", err)
	}

	conn, err := connection.NewConnection(ctx, logging)
	if err != nil {
		logging.Close()
		return nil, nil, fmt.Errorf("initializing firestore: %w", err)
	}

	return logging, conn, nil
}
