package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/extbuild/internal/build"
	exterrors "github.com/thoreinstein/extbuild/internal/errors"
	"github.com/thoreinstein/extbuild/internal/paths"
	"github.com/thoreinstein/extbuild/internal/platform"
)

var (
	planFormat   string
	planPlatform string
)

func init() {
	planCmd.Flags().StringVar(&planFormat, "format", "text",
		"output format: text, yaml, json")
	planCmd.Flags().StringVar(&planPlatform, "platform", "",
		"show the plan for another platform: "+strings.Join(platform.Names(), ", "))
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the build plan without running it",
	Long: `Print the required tools, the build commands, where the built module is
expected and the order of install locations for this platform.

Nothing is executed.`,
	Example: `  extbuild plan
  extbuild plan --platform windows --format yaml`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, _ []string) error {
	c := loadedConfig()

	p := platform.Current()
	if planPlatform != "" {
		parsed, err := platform.Parse(planPlatform)
		if err != nil {
			return exterrors.NewFailure(err, "valid platforms: "+strings.Join(platform.Names(), ", "))
		}
		p = parsed
	}

	root, err := paths.ResolvePackageRoot(c.PackageRoot)
	if err != nil {
		return exterrors.NewFailure(err, "set package_root to the extension source tree")
	}

	view := build.Describe(p, c.ExtensionName, root, c.ElevationCommand)
	return writePlan(cmd.OutOrStdout(), view, planFormat)
}

func writePlan(w io.Writer, view build.PlanView, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(view), "encoding plan")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return errors.Wrap(err, "encoding plan")
		}
		return errors.Wrap(enc.Close(), "encoding plan")
	case "text":
		writePlanText(w, view)
		return nil
	default:
		return exterrors.NewFailure(
			errors.Newf("unknown format %q", format),
			"use --format text, yaml or json")
	}
}

func writePlanText(w io.Writer, view build.PlanView) {
	fmt.Fprintf(w, "Extension: %s\n", view.Extension)
	fmt.Fprintf(w, "Platform:  %s\n", view.Platform)
	fmt.Fprintf(w, "Source:    %s\n", view.PackageRoot)

	if len(view.Commands) == 0 {
		fmt.Fprintln(w, "\nNo build plan for this platform.")
		return
	}

	fmt.Fprintln(w, "\nRequired tools:")
	for _, r := range view.Requirements {
		fmt.Fprintf(w, "  %-11s %s\n", r.Name, r.Purpose)
	}

	fmt.Fprintln(w, "\nCommands:")
	for i, c := range view.Commands {
		fmt.Fprintf(w, "  %d. %s\n", i+1, c)
	}

	fmt.Fprintln(w, "\nArtifact:")
	for _, a := range view.Artifacts {
		fmt.Fprintf(w, "  %s\n", a)
	}

	fmt.Fprintln(w, "\nInstall order:")
	for i, s := range view.Strategies {
		fmt.Fprintf(w, "  %d. %s\n", i+1, s)
	}
}
