// Package cli builds the winaudio command tree. It owns argument validation
// and the mapping from library results to console output and exit codes:
// argument shape problems are usage errors, environment failures are
// returned up as errors, and routine operation failures print false and
// exit nonzero.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sameerbk201/winaudio"
)

// exitOperationFailed is the exit code for operations that report false.
const exitOperationFailed = 1

// RootCommand assembles the command tree.
func RootCommand(log *zerolog.Logger) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "winaudio",
		Short:         "Control Windows audio playback endpoints",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			*log = log.Level(level)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		listCommand(log),
		setDefaultCommand(log),
		muteCommand(log),
		mutedCommand(log),
		formatCommand(log),
	)

	return rootCmd
}

func listCommand(log *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active playback devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := winaudio.ListDevices()
			if err != nil {
				return err
			}
			log.Debug().Int("count", len(devices)).Msg("enumerated playback devices")

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(devices)
		},
	}
}

func setDefaultCommand(log *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <device-id>",
		Short: "Make a device the default for all playback roles",
		Args:  requireDeviceID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := winaudio.SetDefaultDevice(args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, log, ok, "set default device")
		},
	}
}

func muteCommand(log *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "mute <on|off> [device-id]",
		Short: "Mute or unmute the default device, or a device by ID",
		Args:  muteArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mute, _ := parseOnOff(args[0])

			var (
				ok  bool
				err error
			)
			if len(args) == 2 {
				ok, err = winaudio.MuteDevice(args[1], mute)
			} else {
				ok, err = winaudio.SetDefaultPlaybackMute(mute)
			}
			if err != nil {
				return err
			}
			return printResult(cmd, log, ok, "set mute flag")
		},
	}
}

func mutedCommand(log *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "muted [device-id]",
		Short: "Report the mute flag of the default device, or a device by ID",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				muted bool
				err   error
			)
			if len(args) == 1 {
				muted, err = winaudio.DeviceMuted(args[0])
			} else {
				muted, err = winaudio.DefaultPlaybackMuted()
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), muted)
			return nil
		},
	}
}

func formatCommand(log *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "format <device-id>",
		Short: "Show the shared-mode mix format of a device",
		Args:  requireDeviceID,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := winaudio.DeviceFormat(args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}
}

// requireDeviceID demands exactly one non-empty device ID argument.
func requireDeviceID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one device ID argument, got %d", len(args))
	}
	if args[0] == "" {
		return fmt.Errorf("device ID must not be empty")
	}
	return nil
}

func muteArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("expected <on|off> and an optional device ID, got %d arguments", len(args))
	}
	if _, err := parseOnOff(args[0]); err != nil {
		return err
	}
	if len(args) == 2 && args[1] == "" {
		return fmt.Errorf("device ID must not be empty")
	}
	return nil
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
}

// printResult writes the operation's boolean outcome and exits nonzero on
// false, so scripts can branch without parsing output.
func printResult(cmd *cobra.Command, log *zerolog.Logger, ok bool, action string) error {
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	if !ok {
		log.Debug().Str("action", action).Msg("operation reported failure")
		os.Exit(exitOperationFailed)
	}
	return nil
}
