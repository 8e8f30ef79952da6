package doctor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for doctor reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes doctor reports.
type Reporter struct {
	out     io.Writer
	format  Format
	showAll bool
}

// NewReporter creates a Reporter. In text format only warnings and errors
// are listed unless showAll is set.
func NewReporter(out io.Writer, format Format, showAll bool) *Reporter {
	return &Reporter{out: out, format: format, showAll: showAll}
}

// Report writes report to the output.
func (r *Reporter) Report(report *DoctorReport) error {
	if report == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "encoding JSON report")
	default:
		r.reportText(report)
		return nil
	}
}

func (r *Reporter) reportText(report *DoctorReport) {
	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status == SeverityError || result.Status == SeverityWarning
		if !r.showAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(r.out, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && (problem || result.Status == SeverityInfo) {
			fmt.Fprintf(r.out, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput {
		fmt.Fprintln(r.out)
	}

	fmt.Fprintf(r.out, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s Severity) string {
	switch s {
	case SeverityPass:
		return color.GreenString("✓")
	case SeverityInfo:
		return color.CyanString("ℹ")
	case SeverityWarning:
		return color.YellowString("⚠")
	case SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
