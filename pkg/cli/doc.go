/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the pyready command line interface.
//
// The root command exposes two subcommands:
//
//	check    evaluate readiness of packages for a target Python version
//	version  print build information
//
// Report data goes to stdout (or --output); logs go to stderr, so output
// stays pipeable:
//
//	pyready check --python 3.14 --projects top-packages.json | jq .
package cli
