// SPDX-License-Identifier: MPL-2.0

// Command blockresolve looks up and disambiguates Scratch blocks by the
// hash of their spec text.
package main

import "github.com/sbtools/blockresolve/cmd/blockresolve"

func main() {
	cmd.Execute()
}
