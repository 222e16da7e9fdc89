// Command vf2ctl is a small command-line front end over the vf2 matching
// engine: it loads a pattern graph and a host graph from YAML definition
// files and prints every mapping the engine discovers.
package main

import "github.com/katalvlaran/vf2/cmd/vf2ctl/cmd"

func main() {
	cmd.Execute()
}
