package commands

import (
	"context"

	"github.com/smc-io/smc-client/pkg/smc"
	"github.com/spf13/cobra"
)

// NewRowsCommand creates the rows command
func NewRowsCommand() *cobra.Command {
	var (
		startingPage int
		maxPages     int
	)

	cmd := &cobra.Command{
		Use:   "rows OBJECT_KEY",
		Short: "Fetch the rows of a custom object",
		Long: `Walk the paginated rowset of a custom object (or data extension) by key
and print every row. Pagination follows the server-supplied next links;
use --max-pages to bound the walk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cli, err := newClient(ctx)
			if err != nil {
				return err
			}

			opts := &smc.PaginationOptions{
				StartingPage: startingPage,
				MaxPages:     maxPages,
			}

			rows, err := smc.FetchAllRows(ctx, cli.CustomObjects(), args[0], opts)
			if err != nil {
				return err
			}

			return renderStructured(rows, func() error {
				return renderRows(rows)
			})
		},
	}

	cmd.Flags().IntVar(&startingPage, "page", 1, "first page to fetch")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "maximum pages to fetch (0 = all)")

	return cmd
}
