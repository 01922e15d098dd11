// Command board collects validated projects into active and finished lists.
package main

import "github.com/mesh-intelligence/projectboard/internal/cli"

func main() {
	cli.Execute()
}
