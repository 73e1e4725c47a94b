/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/ento/pyreadiness-spike/pkg/cli"

func main() {
	cli.Execute()
}
