package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ENDPOINT",
		Short: "Issue a raw GET request",
		Long: `Issue a bearer-authenticated GET against the data API and print the
response body. The endpoint may be a path relative to the data base URL
(e.g. "contacts/v1/contacts") or a fully-qualified URL starting with it.
The status code is not interpreted; error bodies print as-is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cli, err := newClient(ctx)
			if err != nil {
				return err
			}

			resp, err := cli.Get(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "HTTP %d\n", resp.StatusCode)

			var pretty bytes.Buffer
			if json.Indent(&pretty, resp.Body, "", defaultJSONIndent) == nil {
				fmt.Println(pretty.String())

				return nil
			}

			fmt.Println(string(resp.Body))

			return nil
		},
	}
}
