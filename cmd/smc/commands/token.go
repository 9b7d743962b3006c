package commands

import (
	"context"
	"fmt"

	"github.com/smc-io/smc-client/internal/client"
	"github.com/spf13/cobra"
)

// NewTokenCommand creates the token command
func NewTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Fetch an access token",
		Long: `Authenticate against the tenant auth endpoint and print the
resulting bearer token. Useful for scripting direct API calls.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cli, err := newClient(ctx)
			if err != nil {
				return err
			}

			concrete, ok := cli.(*client.Client)
			if !ok {
				return fmt.Errorf("unexpected client type %T", cli)
			}

			token, err := concrete.GetToken(ctx)
			if err != nil {
				return err
			}

			fmt.Println(token)

			return nil
		},
	}
}
