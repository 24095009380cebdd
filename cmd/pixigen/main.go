// Command pixigen renders pixi.toml manifests for conda-forge feedstocks.
package main

import "github.com/cameronsjo/pixigen/internal/cmd"

func main() {
	cmd.Execute()
}
