// Command shark sends one question to the Shark AI relay and prints the reply.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"shark-ai/internal/chat"
	"shark-ai/internal/client"
	"shark-ai/internal/config"
)

const (
	modeChat    = "chat"
	modeMarine  = "marine"
	modeSpecies = "species"
	modeEDNA    = "edna"
	modeOcean   = "ocean"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shark", flag.ContinueOnError)
	fs.SetOutput(stderr)
	backend := fs.String("backend", config.BackendURL(), "relay base URL")
	mode := fs.String("mode", modeChat, "chat, marine, species, edna or ocean")
	dataType := fs.String("type", "data", "data type for marine mode")
	asHTML := fs.Bool("html", false, "render the reply as HTML")
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: shark [-backend URL] [-mode chat|marine|species|edna|ocean] [-type dataType] [-html] text...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	text := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if text == "" {
		fs.Usage()
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	c := client.New(*backend, client.WithLogger(logger))

	var (
		reply string
		err   error
	)
	switch *mode {
	case modeChat:
		reply, err = c.SendMessage(ctx, []chat.Message{chat.UserMessage(text)})
	case modeMarine:
		reply, err = c.AnalyzeMarineData(ctx, *dataType, text)
	case modeSpecies:
		reply, err = c.IdentifySpecies(ctx, text)
	case modeEDNA:
		reply, err = c.InterpretEDNA(ctx, text)
	case modeOcean:
		reply, err = c.AnalyzeOceanConditions(ctx, text)
	default:
		_, _ = fmt.Fprintf(stderr, "unknown mode %q\n", *mode)
		return 2
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "shark: %v\n", err)
		return 1
	}

	if *asHTML {
		html, err := client.RenderHTML(reply)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "shark: %v\n", err)
			return 1
		}
		reply = html
	}

	_, _ = fmt.Fprintln(stdout, reply)
	return 0
}
