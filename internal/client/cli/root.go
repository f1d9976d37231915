package cli

import (
	"bufio"
	"context"
	"os"
)

// Root runs the interactive loop until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the medadvisor CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
