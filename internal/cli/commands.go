package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/ihft/internal/dispatch"
	"github.com/Makepad-fr/ihft/internal/ui"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "ihft",
		Short: "I have free time: pick something to do",
		Long: `ihft keeps a list of things to do with your free time.

Run without a subcommand to pick one at random. The picked thing is taken
off the list; ` + "`ihft undo`" + ` puts it back.`,
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPick(cmd)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.dir, "dir", "", "data directory (default $IHFT_DIR or ~/.ihft)")
	pf.StringVar(&a.theme, "theme", "", "colour theme: classic, neon, mono")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colours")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "suppress confirmation messages")

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newRemoveCmd(a),
		newUndoCmd(a),
		newHistoryCmd(a),
		newBrowseCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		if !cmd.HasParent() {
			return &usageError{msg: fmt.Sprintf("unknown command: %s", args[0])}
		}
		return &usageError{msg: fmt.Sprintf("%s: unexpected argument: %s", cmd.Name(), args[0])}
	}
	return nil
}

func (a *app) runPick(cmd *cobra.Command) error {
	d, err := a.dispatcher()
	if err != nil {
		return err
	}
	item, err := d.Pick()
	if err == nil || errors.Is(err, dispatch.ErrHistoryWrite) {
		ui.Highlight(cmd.OutOrStdout(), item)
	}
	return err
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add [thing...]",
		Short: "Add a thing (words are joined with spaces)",
		Example: `  ihft add "walk the dog"
  ihft add read a chapter`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.dispatcher()
			if err != nil {
				return err
			}
			thing := strings.Join(args, " ")
			if err := d.Add(thing); err != nil {
				return err
			}
			if thing != "" {
				a.ok("added")
			}
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List things, most recently added first",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.dispatcher()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			things := d.List()
			if len(things) == 0 {
				ui.Muted(out, "nothing here, the store is empty")
				return nil
			}
			if plain {
				for _, t := range things {
					fmt.Fprintln(out, t)
				}
				return nil
			}
			t := ui.Current()
			lines := []string{
				fmt.Sprintf("%s  %s", t.Title.Render("Things"), t.Muted.Render(fmt.Sprintf("(%d)", len(things)))),
				"",
			}
			lines = append(lines, ui.Bullets(things)...)
			ui.Panel(out, lines)
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "one thing per line, no decoration")
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <thing...>",
		Aliases: []string{"rm"},
		Short:   "Remove the first matching thing",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &usageError{msg: "usage: ihft remove <thing>"}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.dispatcher()
			if err != nil {
				return err
			}
			if err := d.Remove(strings.Join(args, " ")); err != nil {
				return err
			}
			a.ok("removed")
			return nil
		},
	}
}

func newUndoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Undo the last add, remove or pick",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.dispatcher()
			if err != nil {
				return err
			}
			r, err := d.Undo()
			if err != nil {
				return err
			}
			a.ok("undone: " + r.String())
			return nil
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show logged actions, most recent first",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.dispatcher()
			if err != nil {
				return err
			}
			recs, err := d.History()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				ui.Muted(out, "no history")
				return nil
			}
			lines := make([]string, 0, len(recs))
			for _, r := range recs {
				lines = append(lines, r.String())
			}
			lines[0] += "  " + ui.Current().Muted.Render("<- undo")
			ui.Panel(out, lines)
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings",
		Example: `  ihft config
  ihft --theme neon config --save`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			cfg := *a.cfg
			if a.theme != "" {
				cfg.Theme = a.theme
			}
			if save {
				if err := cfg.Save(); err != nil {
					return err
				}
				a.ok("saved " + cfg.Path())
				return nil
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			ui.Muted(out, "# "+cfg.Path())
			fmt.Fprint(out, string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "write the settings to config.yaml")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ihft %s\n", Version)
		},
	}
}
