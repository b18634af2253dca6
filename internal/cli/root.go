// Package cli wires the keygrid commands: the interactive overlay and the
// non-interactive layout and stylesheet dumps.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/chatter/keygrid/internal/grid"
	"github.com/chatter/keygrid/internal/keymap"
	"github.com/chatter/keygrid/internal/logger"
)

// options holds the persistent flags shared by every command.
type options struct {
	version string

	cfgFile     string
	keymapPath  string
	logLevel    string
	orientation string
	color       string

	config *viper.Viper
	log    *logger.Logger
}

// NewRootCmd builds the keygrid command tree. Running it without a
// subcommand opens the interactive overlay.
func NewRootCmd(version string) *cobra.Command {
	o := &options{
		version: version,
		config:  viper.New(),
		log:     logger.Nop(),
	}

	rootCmd := &cobra.Command{
		Use:   "keygrid",
		Short: "Show keybindings on a responsive grid",
		Long: `keygrid lays out groups of keybindings on a grid whose column count
shrinks until it fits the terminal, and shows them in a help overlay.
Keymaps are TOML, YAML or JSON files and are reloaded when they change.`,
		Version:            version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  o.setup,
		PersistentPostRunE: o.teardown,
		RunE:               o.runShow(new(bool)),
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", "", "config file (default is $HOME/.keygrid.toml)")
	flags.StringVarP(&o.keymapPath, "keymap", "k", "", "keymap file (default is the built-in keymap)")
	flags.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error (default off)")
	flags.StringVarP(&o.orientation, "orientation", "o", "horizontal", "item placement: horizontal or vertical")
	flags.StringVar(&o.color, "color", "auto", "color profile: auto, truecolor, ansi256, ansi, ascii, none")

	rootCmd.AddCommand(
		newShowCmd(o),
		newLayoutCmd(o),
		newCSSCmd(o),
	)

	return rootCmd
}

// setup reads the config file, applies it to unset flags and opens the log.
func (o *options) setup(cmd *cobra.Command, _ []string) error {
	if err := o.initConfig(); err != nil {
		return err
	}

	if err := o.bindFlags(cmd); err != nil {
		return err
	}

	log, err := logger.New(o.logLevel)
	if err != nil {
		return err
	}
	o.log = log.With("command", cmd.Name())

	if used := o.config.ConfigFileUsed(); used != "" {
		o.log.Debug("config loaded", "path", used)
	}

	return nil
}

func (o *options) teardown(*cobra.Command, []string) error {
	o.log.Close()
	return nil
}

func (o *options) initConfig() error {
	if o.cfgFile != "" {
		// Use config file from the flag.
		o.config.SetConfigFile(o.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		// Search config in home directory with name ".keygrid" (without extension).
		o.config.AddConfigPath(home)
		o.config.SetConfigType("toml")
		o.config.SetConfigName(".keygrid")
	}

	o.config.SetEnvPrefix("keygrid")
	o.config.AutomaticEnv()

	if err := o.config.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	return nil
}

// bindFlags sets flags from the config when they were not given explicitly.
// Config keys are flag names without hyphens ("log-level" -> "loglevel").
func (o *options) bindFlags(cmd *cobra.Command) error {
	var bindErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		configName := strings.ReplaceAll(f.Name, "-", "")

		if bindErr != nil || f.Changed || !o.config.IsSet(configName) {
			return
		}

		val := o.config.Get(configName)
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			bindErr = fmt.Errorf("config %s: %w", configName, err)
		}
	})

	return bindErr
}

// parsedOrientation returns the --orientation value.
func (o *options) parsedOrientation() (grid.Orientation, error) {
	return grid.ParseOrientation(o.orientation)
}

// loadKeymap reads --keymap, or returns the built-in keymap.
func (o *options) loadKeymap() (*keymap.Keymap, error) {
	if o.keymapPath == "" {
		return keymap.Default(), nil
	}
	return keymap.Load(o.keymapPath)
}
