// Command rivercross solves generalized river-crossing puzzles.
//
//	rivercross solve --pairs 3 --capacity 2
//	rivercross solve --pairs 3 --capacity 2 --rule outnumbered --algo dfs
//	rivercross heuristic --pairs 8
//	rivercross validate --pairs 2 --capacity 2 --moves 'a1,A1;A1;A1,A2;a1;a1,a2'
//	rivercross report --plan plan.yaml --metrics-addr :9090
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "rivercross:", err)
		stop()
		os.Exit(1)
	}
}
