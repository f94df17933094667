// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/tsvdparity/internal/cli"

func main() {
	cli.Execute()
}
