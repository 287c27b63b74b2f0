package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"justmeditation/internal/app"
	"justmeditation/internal/core/model"
	"justmeditation/internal/storage"
	"justmeditation/internal/ui/preferences"
)

const (
	keyDuration  = "duration"
	keyInterval  = "interval"
	keyAmbient   = "ambient"
	keySoundsDir = "sounds-dir"
	keyPlayer    = "player"
	keyVerbose   = "verbose"

	envPrefix = "JUSTMEDITATION"
)

var overlayKeys = []string{keyDuration, keyInterval, keyAmbient, keySoundsDir, keyPlayer, keyVerbose}

// rootOptions is shared by every subcommand.
type rootOptions struct {
	configPath string
	v          *viper.Viper
	out        *printer
}

func newRootCmd(out *printer) *cobra.Command {
	opts := &rootOptions{v: viper.New(), out: out}

	root := &cobra.Command{
		Use:   "justmeditation",
		Short: "Meditation timer with interval bells and ambient sound",
		Long: `justmeditation runs a meditation session of a chosen length, rings a bell
at a fixed interval and a chime at the end, and can loop an ambient track.

Running bare 'justmeditation' opens the desktop timer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Settings file (default <user config dir>/justmeditation/settings.yaml)")
	flags.Int(keyDuration, preferences.DefaultSettings().DurationMinutes, "Session length in minutes (1-180)")
	flags.Float64(keyInterval, preferences.DefaultSettings().BellIntervalMinutes, "Bell interval in minutes, fractional values allowed")
	flags.String(keyAmbient, string(model.AmbientSilence), "Ambient track: silence, rain, forest or waves")
	flags.String(keySoundsDir, "", "Folder with bell, rain, forest and waves sound files")
	flags.String(keyPlayer, "", "Audio player command, detected when empty")
	flags.BoolP(keyVerbose, "v", false, "Write debug lines to the log file")
	bindOverlay(opts.v, flags)

	root.AddCommand(newGUICmd(opts))
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newTipsCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	return root
}

// bindOverlay lets flags and JUSTMEDITATION_* variables override the settings file.
func bindOverlay(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, name := range overlayKeys {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
}

func (opts *rootOptions) settingsPath() (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return storage.SettingsPath(app.Name)
}

// loadSettings reads the settings file and applies the flag and environment
// overlay. An unreadable file falls back to defaults with a warning.
func (opts *rootOptions) loadSettings() (preferences.Settings, string, error) {
	path, err := opts.settingsPath()
	if err != nil {
		return preferences.DefaultSettings(), "", err
	}

	settings, err := storage.LoadSettingsFile(path)
	if err != nil {
		opts.out.Warning("using default settings: %v", err)
		settings = preferences.DefaultSettings()
	}
	return overlaySettings(settings, opts.v), path, nil
}

func overlaySettings(settings preferences.Settings, v *viper.Viper) preferences.Settings {
	if v.IsSet(keyDuration) {
		settings.DurationMinutes = v.GetInt(keyDuration)
	}
	if v.IsSet(keyInterval) {
		settings.BellIntervalMinutes = v.GetFloat64(keyInterval)
	}
	if v.IsSet(keyAmbient) {
		settings.Ambient = model.ParseAmbient(v.GetString(keyAmbient))
	}
	if v.IsSet(keySoundsDir) {
		settings.SoundsDir = v.GetString(keySoundsDir)
	}
	if v.IsSet(keyPlayer) {
		settings.Player = v.GetString(keyPlayer)
	}
	if v.IsSet(keyVerbose) {
		settings.Verbose = v.GetBool(keyVerbose)
	}
	return settings.Normalized()
}
