// SPDX-License-Identifier: MIT

// Command smartgps generates road networks and compares shortest-path
// engines on them.
//
//	smartgps compare --rows 20 --cols 20 --format table
//	smartgps compare -c scenario.yaml --runs 10 --format json
//	smartgps generate --generator city --preset small
//	smartgps dot --engine astar --positions > route.dot
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
