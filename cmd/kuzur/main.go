// Kuzur is a small dynamically typed scripting language. This command runs
// Kuzur scripts, an interactive read-eval-print loop, or a language server.
package main

import (
	"os"

	"github.com/kuzur-lang/kuzur/pkg/buildinfo"
	"github.com/kuzur-lang/kuzur/pkg/lsp"
	"github.com/kuzur-lang/kuzur/pkg/prog"
	"github.com/kuzur-lang/kuzur/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, lsp.Program{}, shell.Program{})))
}
