package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"justmeditation/internal/storage"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or manage the settings file",
		Long: `Show or manage justmeditation settings.

Running bare 'justmeditation config' is the same as 'justmeditation config show'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return configShowRun(opts)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective settings after flags and environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return configShowRun(opts)
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.settingsPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(opts.out.out, path)
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective settings to the settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return configInitRun(opts, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")

	cmd.AddCommand(showCmd, pathCmd, initCmd)
	return cmd
}

func configShowRun(opts *rootOptions) error {
	settings, path, err := opts.loadSettings()
	if err != nil {
		return err
	}
	serialized, err := storage.MarshalSettings(settings)
	if err != nil {
		return err
	}

	source := "defaults"
	if _, statErr := os.Stat(path); statErr == nil {
		source = path
	}
	fmt.Fprintf(opts.out.out, "%s %s\n", heading("# source:"), faint(source))
	fmt.Fprint(opts.out.out, string(serialized))
	return nil
}

func configInitRun(opts *rootOptions, force bool) error {
	settings, path, err := opts.loadSettings()
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(path); statErr == nil {
		if !force {
			return fmt.Errorf("settings file already exists: %s (use --force to overwrite)", path)
		}
		opts.out.Warning("Overwriting existing settings file")
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("check settings file: %w", statErr)
	}

	if err := storage.SaveSettingsFile(path, settings); err != nil {
		return err
	}
	opts.out.Success("Wrote %s", path)
	return nil
}
