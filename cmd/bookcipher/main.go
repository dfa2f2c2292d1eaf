// Command bookcipher decodes book-cipher messages.
package main

import "github.com/ScriptRock/bookcipher/internal/cli"

func main() {
	cli.Execute()
}
