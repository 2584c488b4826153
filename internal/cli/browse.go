package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/ihft/internal/tui"
	"github.com/Makepad-fr/ihft/internal/ui"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse things interactively (r pick, d remove, a add, u undo)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.dispatcher()
			if err != nil {
				return err
			}
			m, err := tui.Run(d, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			if p, ok := m.Picked(); ok {
				ui.Highlight(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}
