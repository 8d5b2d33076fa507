// Command tasker is the CLI entrypoint for the interactive task list manager.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nibzard/tasker-go/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A session blocked on stdin cannot observe ctx, so wait on both
	done := make(chan error, 1)
	go func() {
		done <- cmd.Run(ctx, os.Args[1:])
	}()

	select {
	case err := <-done:
		if err == nil {
			return
		}
		if ctx.Err() != nil {
			fmt.Fprintf(os.Stderr, "\nInterrupted\n")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	case <-ctx.Done():
		fmt.Fprintf(os.Stderr, "\nInterrupted\n")
		os.Exit(130)
	}
}
