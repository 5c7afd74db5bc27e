// Command recq queries collections of JSON and YAML records.
package main

import "github.com/d-kuro/recq/internal/cmd"

func main() {
	cmd.Execute()
}
