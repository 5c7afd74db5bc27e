package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the recq version with commit, build time and platform details.`,
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		writeVersion(cmd.OutOrStdout(), buildVersion(info), versionShort)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}

// versionInfo describes the running binary.
type versionInfo struct {
	Version   string
	Commit    string
	Modified  bool
	Built     string
	GoVersion string
}

// buildVersion merges the link-time variables with the embedded build info,
// which may be nil.
func buildVersion(info *debug.BuildInfo) versionInfo {
	v := versionInfo{
		Version:   version,
		Commit:    commit,
		Built:     date,
		GoVersion: runtime.Version(),
	}
	if info == nil {
		return v
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		v.Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			v.Commit = setting.Value
		case "vcs.time":
			v.Built = setting.Value
		case "vcs.modified":
			v.Modified = setting.Value == "true"
		}
	}
	// Untagged builds fall back to the short commit hash.
	if v.Version == "dev" && v.Commit != "none" && v.Commit != "" {
		v.Version = v.Commit[:min(7, len(v.Commit))]
	}
	return v
}

func writeVersion(w io.Writer, v versionInfo, short bool) {
	if short {
		_, _ = fmt.Fprintln(w, v.Version)
		return
	}

	_, _ = fmt.Fprintf(w, "recq version %s\n", v.Version)
	_, _ = fmt.Fprintf(w, "  commit: %s\n", v.Commit)
	if v.Modified {
		_, _ = fmt.Fprintf(w, "  modified: true\n")
	}
	_, _ = fmt.Fprintf(w, "  built: %s\n", v.Built)
	_, _ = fmt.Fprintf(w, "  go: %s\n", v.GoVersion)
	_, _ = fmt.Fprintf(w, "  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
