// Package config loads vitrine's optional TOML configuration file.
//
// The file lives at ~/.config/vitrine/config.toml by default and may set the
// catalog endpoint URL and the HTTP request timeout. A missing file is not an
// error; built-in defaults apply.
package config
