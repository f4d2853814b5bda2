package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ripplerest/ripplerest-go/cmd/utils"
	"github.com/ripplerest/ripplerest-go/pkg/ripplerest"
)

type serverCmd struct {
	client *ripplerest.Client
}

func (c *serverCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Query the ripple-rest server",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client, err := utils.NewRippleRestClient(globalOptions, metricsService)
			if err != nil {
				return err
			}
			c.client = client
			return nil
		},
	}

	connectedCmd := &cobra.Command{
		Use:   "connected",
		Short: "Reports whether the server is connected to the ripple network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			connected, err := c.client.IsServerConnected(cmd.Context())
			if err != nil {
				return fmt.Errorf("checking server connection: %w", err)
			}
			return utils.PrintJSON(cmd.OutOrStdout(), map[string]bool{"connected": connected})
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Prints the server status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := c.client.GetServerInfo(cmd.Context())
			if err != nil {
				return fmt.Errorf("getting server info: %w", err)
			}
			return utils.PrintJSON(cmd.OutOrStdout(), info)
		},
	}

	uuidCmd := &cobra.Command{
		Use:   "uuid",
		Short: "Asks the server for a new client resource ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uuid, err := c.client.GenerateUUID(cmd.Context())
			if err != nil {
				return fmt.Errorf("generating uuid: %w", err)
			}
			return utils.PrintJSON(cmd.OutOrStdout(), map[string]string{"uuid": uuid})
		},
	}

	txCmd := &cobra.Command{
		Use:   "tx {hash}",
		Short: "Prints a validated transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := c.client.GetTransaction(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting transaction: %w", err)
			}
			return utils.PrintJSON(cmd.OutOrStdout(), tx)
		},
	}

	cmd.AddCommand(connectedCmd, infoCmd, uuidCmd, txCmd)

	return cmd
}
