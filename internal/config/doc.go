// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

// Package config provides layered configuration for the FocusNest server.
//
// Configuration is loaded from three sources in order of increasing
// precedence: built-in defaults, an optional YAML config file, and
// environment variables. The file path is discovered via CONFIG_PATH or a
// small set of conventional locations (see DefaultConfigPaths).
//
// All settings are validated after loading; validation errors name the
// environment variable that controls the offending setting so operators can
// fix deployments without reading source.
package config
