package instructions

// IssuesURL is where users are pointed for further help.
const IssuesURL = "https://github.com/yourcompany/your-extension/issues"

const postInstallTemplate = `
{{rule}}
{{header "POST-INSTALLATION INSTRUCTIONS"}}
{{rule}}
1. Add this line to your php.ini file:
   extension={{.Extension}}

2. Find your php.ini location:
   php --ini

3. Restart your web server (if applicable):
{{- if eq .Platform "macos"}}
   # For Apache (Homebrew):
   brew services restart httpd
   # For Nginx (Homebrew):
   brew services restart nginx
   # For built-in server:
   # Just restart your PHP process
{{- else if eq .Platform "linux"}}
   sudo systemctl restart apache2  # or nginx, php-fpm
{{- else if eq .Platform "windows"}}
   # Restart IIS or your web server
{{- end}}

4. Verify installation:
   php -m | grep {{.Extension}}
   php -r "var_dump(extension_loaded('{{.Extension}}'));"
{{if .ExtensionDir}}
   The module was placed outside PHP's extension directory. Also add:
   extension_dir="{{.ExtensionDir}}"
{{end}}
{{- if eq .Platform "macos"}}
macOS-specific notes:
- If using Homebrew PHP, make sure you're using the correct PHP binary
- Check: which php (should show /opt/homebrew/bin/php or /usr/local/bin/php)
- Multiple PHP versions: Use php@8.1, php@8.2, etc.
{{end}}
For troubleshooting, visit:
{{.IssuesURL}}
{{rule}}
`

const troubleshootingTemplate = `
{{header (printf "Troubleshooting hints for %s:" .Platform)}}
{{- range .Hints}}
- {{.}}
{{- end}}
`

var troubleshootingHints = map[string][]string{
	"macos": {
		"Install Xcode command line tools: xcode-select --install",
		"Install Homebrew PHP: brew install php",
		"Check PHP version: php --version",
		"Ensure php-config is in PATH: which php-config",
	},
	"linux": {
		"Install PHP dev package: sudo apt-get install php-dev (Ubuntu/Debian)",
		"Or: sudo yum install php-devel (CentOS/RHEL)",
		"Install build tools: sudo apt-get install build-essential",
	},
	"windows": {
		"Install Visual Studio with C++ support",
		"Use PHP SDK for Windows",
		"Ensure nmake is in PATH",
	},
	"unknown": {
		"Supported platforms are macOS, Linux (including BSD) and Windows",
		"Build the extension manually with phpize, configure and make",
	},
}
