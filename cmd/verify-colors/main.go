// Package main provides the one-shot page verifier for the litebrite-webgpu
// app. It drives a headless Chromium against the local dev server, captures
// verification/verification.png, and prints the color peg attributes.
//
// There are no flags and no environment variables; run it with the app
// already serving on http://localhost:5173.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ford442/litebrite-webgpu/pkg/verify"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "verification failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	verifier := verify.New(verify.Options{})
	return verifier.Run(ctx)
}
