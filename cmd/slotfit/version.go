package main

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set via -ldflags "-X main.version=..." by release builds.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v, c, d := buildVersion()
		printInfo("slotfit %s\n  commit: %s\n  built: %s\n", v, c, d)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// buildVersion prefers ldflags values and falls back to the VCS stamp that
// `go build` embeds in the binary.
func buildVersion() (ver, rev, built string) {
	ver, rev, built = version, commit, date

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ver, rev, built
	}
	if ver == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		ver = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if rev == "none" {
				rev = s.Value
			}
		case "vcs.time":
			if built == "unknown" {
				built = s.Value
			}
		}
	}
	return ver, rev, built
}
