/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"log"

	"github.com/ento/pyreadiness-spike/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
