// SPDX-License-Identifier: MPL-2.0

// Command typst-project locates typst project roots and inspects typst.toml
// manifests.
package main

func main() {
	Execute()
}
