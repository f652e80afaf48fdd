// SPDX-License-Identifier: MIT
// Command sgm is a small command-line front end for geomlib: it builds
// shapes by kind, prints their summaries, sorts mixed collections and
// demonstrates edits with their change events.
//
// Usage:
//
//	sgm kinds
//	sgm info rectangle 10 5
//	sgm sort --by perimeter rectangle:10,5 circle:7 triangle:40,50,80.99
//	sgm edit rectangle 10 5 --to 20,10
//	sgm batch --file shapes.yaml --json
package main

import "os"

func main() {
	if err := newApp().Execute(); err != nil {
		os.Exit(1)
	}
}
