package doctor

import (
	"context"
	"time"

	"github.com/thoreinstein/extbuild/internal/logging"
)

// Check is one diagnostic.
type Check interface {
	// Name identifies the check in reports, for example "tool:cargo".
	Name() string

	// Category groups related checks (see the Category constants).
	Category() string

	// Run inspects the host and reports what it found. It must not return
	// nil.
	Run(ctx context.Context) *CheckResult
}

// Runner executes checks in registration order.
type Runner struct {
	checks []Check
	now    func() time.Time
}

// NewRunner creates an empty Runner.
func NewRunner() *Runner {
	return &Runner{now: time.Now}
}

// AddCheck appends checks to the run.
func (r *Runner) AddCheck(c ...Check) {
	r.checks = append(r.checks, c...)
}

// Run executes every check and tallies the results. Checks run
// sequentially; each one may shell out to the toolchain.
func (r *Runner) Run(ctx context.Context) *DoctorReport {
	logger := logging.FromContext(ctx)

	report := &DoctorReport{
		Timestamp: r.now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		result := check.Run(ctx)
		if result == nil {
			result = &CheckResult{Status: SeverityError, Message: "check returned no result"}
		}
		if result.Name == "" {
			result.Name = check.Name()
		}
		if result.Category == "" {
			result.Category = check.Category()
		}

		logger.Debug("check complete", "check", result.Name, "status", result.Status.String())
		report.Results = append(report.Results, result)
		report.Summary.add(result.Status)
	}

	return report
}

// DoctorReport is the outcome of one Runner.Run.
type DoctorReport struct {
	Timestamp time.Time      `json:"timestamp"`
	Results   []*CheckResult `json:"results"`
	Summary   Summary        `json:"summary"`
}

// HasErrors reports whether any check failed.
func (r *DoctorReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings reports whether any check warned.
func (r *DoctorReport) HasWarnings() bool {
	return r.Summary.Warnings > 0
}
