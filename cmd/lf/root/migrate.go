package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelforge/internal/ui"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			path, err := resolveDBPath()
			if err != nil {
				return err
			}
			_, cleanup, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" schema up to date: "+path))
			return nil
		},
	}

	return cmd
}
