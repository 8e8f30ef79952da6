package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/extbuild/internal/doctor"
	exterrors "github.com/thoreinstein/extbuild/internal/errors"
	"github.com/thoreinstein/extbuild/internal/paths"
	"github.com/thoreinstein/extbuild/internal/platform"
	"github.com/thoreinstein/extbuild/internal/toolchain"
)

var (
	doctorJSON bool
	doctorAll  bool
)

// newDoctorChecks builds the check list. Tests replace it.
var newDoctorChecks = defaultDoctorChecks

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false,
		"show every check, including passed ones")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether this machine can build the extension",
	Long: `Run diagnostic checks without building anything.

Checks the platform, every required build tool, the PHP runtime, whether the
extension is already loaded and whether PHP's extension directory can be
written to.

Exit codes:
  0 - No errors (warnings may be present)
  1 - At least one check failed`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func defaultDoctorChecks() []doctor.Check {
	c := loadedConfig()
	p := platform.Current()
	locator := toolchain.NewLocator(p)

	return doctor.Standard(p, locator, toolchain.NewChecker(locator), newRuntime(c),
		c.ExtensionName, paths.UserExtensionDir(p, nil))
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	runner := doctor.NewRunner()
	runner.AddCheck(newDoctorChecks()...)

	report := runner.Run(cmd.Context())

	format := doctor.FormatText
	if doctorJSON {
		format = doctor.FormatJSON
	}
	if err := doctor.NewReporter(cmd.OutOrStdout(), format, doctorAll).Report(report); err != nil {
		return err
	}

	if report.HasErrors() {
		return exterrors.NewReported(errDoctorErrors)
	}
	return nil
}

// errDoctorErrors marks a doctor run with failed checks.
var errDoctorErrors = errors.New("doctor found errors")
