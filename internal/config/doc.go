// Package config manages the sitectl application configuration stored
// in YAML format.
//
// Configuration lives in the user's home directory at
// ~/.config/sitectl/config.yaml and holds the tool's defaults, not any
// site state: the filesystem under sites-available and sites-enabled is
// the only source of truth for which sites exist and which are active.
//
// Example config.yaml:
//
//	server: nginx
//	editor: vi
//	reload: true
//
// A missing config file is not an error; Load returns the defaults
// (nginx, vi, reload enabled).
package config
