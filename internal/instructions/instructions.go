package instructions

import (
	"io"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"github.com/thoreinstein/extbuild/internal/platform"
)

const ruleWidth = 60

var funcs = template.FuncMap{
	"rule":   func() string { return strings.Repeat("=", ruleWidth) },
	"header": func(s string) string { return color.New(color.Bold).Sprint(s) },
}

var (
	postInstallTmpl     = template.Must(template.New("post-install").Funcs(funcs).Parse(postInstallTemplate))
	troubleshootingTmpl = template.Must(template.New("troubleshooting").Funcs(funcs).Parse(troubleshootingTemplate))
)

// PostInstallData parameterises the post-installation block.
type PostInstallData struct {
	Platform  string
	Extension string
	// ExtensionDir is set when the module landed in a directory that php.ini
	// must be pointed at.
	ExtensionDir string
	IssuesURL    string
}

// PostInstall writes the post-installation checklist for ext on p.
func PostInstall(w io.Writer, p platform.Platform, ext string) error {
	return PostInstallWithDir(w, p, ext, "")
}

// PostInstallWithDir is PostInstall with an extra extension_dir reminder for
// a module placed outside PHP's configured extension directory.
func PostInstallWithDir(w io.Writer, p platform.Platform, ext, extensionDir string) error {
	data := PostInstallData{
		Platform:     p.String(),
		Extension:    ext,
		ExtensionDir: extensionDir,
		IssuesURL:    IssuesURL,
	}
	return errors.Wrap(postInstallTmpl.Execute(w, data), "rendering post-install instructions")
}

// Hints returns the troubleshooting checklist for p. Unsupported platforms
// get a generic list.
func Hints(p platform.Platform) []string {
	hints, ok := troubleshootingHints[p.String()]
	if !ok {
		hints = troubleshootingHints[platform.Unknown.String()]
	}
	out := make([]string, len(hints))
	copy(out, hints)
	return out
}

// Troubleshooting writes the troubleshooting checklist for p.
func Troubleshooting(w io.Writer, p platform.Platform) error {
	data := struct {
		Platform string
		Hints    []string
	}{
		Platform: p.String(),
		Hints:    Hints(p),
	}
	return errors.Wrap(troubleshootingTmpl.Execute(w, data), "rendering troubleshooting hints")
}
