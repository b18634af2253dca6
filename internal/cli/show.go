package cli

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/chatter/keygrid/internal/app"
)

func newShowCmd(o *options) *cobra.Command {
	var hidden bool

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Open the interactive help overlay",
		Long: `Open the help overlay for a keymap. The grid re-lays on every resize and
the keymap file is reloaded when it changes on disk.`,
		Args: cobra.NoArgs,
		RunE: o.runShow(&hidden),
	}

	showCmd.Flags().BoolVar(&hidden, "hidden", false, "start with the overlay closed")

	return showCmd
}

func (o *options) runShow(hidden *bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		orientation, err := o.parsedOrientation()
		if err != nil {
			return err
		}

		profile, forced, err := parseColorProfile(o.color)
		if err != nil {
			return err
		}

		model := app.New(app.Config{
			KeymapPath:  o.keymapPath,
			Orientation: orientation,
			ShowHelp:    !*hidden,
			Version:     o.version,
			Log:         o.log,
		})

		opts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
		if forced {
			opts = append(opts, tea.WithColorProfile(profile))
		}

		o.log.Info("starting overlay", "keymap", o.keymapPath, "orientation", orientation.String())

		if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
			return fmt.Errorf("running overlay: %w", err)
		}

		return nil
	}
}
