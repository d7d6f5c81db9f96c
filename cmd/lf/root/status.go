package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelforge/internal/engine"
	"levelforge/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show all characters with level, experience and power",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Character Status"))

			characters, err := svc.CharacterRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			if len(characters) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no characters yet — register and create one through the API)"))
				return nil
			}

			for i := range characters {
				c := &characters[i]
				power, err := svc.CharacterPower(ctx, c.ID)
				if err != nil {
					return err
				}
				next := engine.ExpRequired(c.Level)

				fmt.Fprintf(out, "%s %s %s\n", ui.ClassIcon(c.Class), ui.H2.Render(c.Name), ui.Muted.Render(fmt.Sprintf("(%s, id %d)", c.Class, c.ID)))
				fmt.Fprintln(out, "  "+ui.LabelValue("Level", c.Level))
				fmt.Fprintln(out, "  "+ui.LabelValue("Exp", fmt.Sprintf("%d / %d", c.Exp, next)))
				fmt.Fprintln(out, "  "+ui.LabelValue("Power", power))
				fmt.Fprintf(out, "  %s STR %d  AGI %d  INT %d  VIT %d\n", ui.Key.Render("Attrs:"), c.Strength, c.Agility, c.Intelligence, c.Vitality)
				fmt.Fprintf(out, "  %s HP %d  MP %d  ATK %d  DEF %d\n", ui.Key.Render("Derived:"), c.HP, c.MP, c.Attack, c.Defense)
				fmt.Fprintln(out, "")
			}

			return nil
		},
	}

	return cmd
}
