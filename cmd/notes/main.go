// Package main implements notes, a command-line client for the study notes
// API. It sends a topic to a running server and prints the generated notes.
//
// Usage:
//
//	notes [-server URL] [-timeout DURATION] <topic...>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

const defaultServerURL = "http://localhost:8080"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	red := color.New(color.FgRed)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		red.Fprintf(stderr, "Failed to load .env file: %v\n", err)
		return 1
	}

	fsFlags := flag.NewFlagSet("notes", flag.ContinueOnError)
	fsFlags.SetOutput(stderr)
	serverURL := fsFlags.String("server", envOr("STUDYNOTES_SERVER_URL", defaultServerURL), "study notes API base URL")
	timeout := fsFlags.Duration("timeout", 60*time.Second, "request timeout")
	fsFlags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: notes [-server URL] [-timeout DURATION] <topic...>")
		fsFlags.PrintDefaults()
	}
	if err := fsFlags.Parse(args); err != nil {
		return 2
	}

	topic := strings.Join(fsFlags.Args(), " ")
	if strings.TrimSpace(topic) == "" {
		fsFlags.Usage()
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := newClient(*serverURL, nil)
	notes, err := client.Generate(ctx, topic)
	if err != nil {
		red.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	renderNotes(stdout, topic, notes)
	return 0
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
