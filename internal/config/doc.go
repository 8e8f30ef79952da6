// Package config loads extbuild settings with Viper.
//
// Settings come from, in increasing precedence: built-in defaults, an
// extbuild.yaml file, and EXTBUILD_* environment variables. The file is
// searched in the working directory and then in the XDG config directory
// (~/.config/extbuild on Linux), or the directory named by
// EXTBUILD_CONFIG_DIR:
//
//	extension_name: valkey-glide
//	package_root: /src/valkey-glide-php   # default: working directory
//	php_binary: php
//	php_config_binary: php-config
//	elevation_command: sudo               # empty disables the sudo retry
//	extension_dir: /usr/lib/php/20230831  # used when PHP cannot report one
//	output_tail_lines: 20
//	progress_lines: 3
//
// Call [Init] once, then [Load]. Loaded values are checked with [Validate].
package config
