package main

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jpalmerr/exampleboard"
)

//go:embed apps
var apps embed.FS

func mustApp(id, title string, opts ...exampleboard.AppOption) exampleboard.ExampleApp {
	inputs, err := exampleboard.InputsFromFS(apps, "apps/"+id)
	if err != nil {
		slog.Error("failed to read app sources", "app", id, "error", err)
		os.Exit(1)
	}
	app, err := exampleboard.NewApp(id, title, append(opts, exampleboard.WithInputs(inputs...))...)
	if err != nil {
		slog.Error("failed to create app", "app", id, "error", err)
		os.Exit(1)
	}
	return app
}

func main() {
	intro, err := exampleboard.NewSection("introduction", "Introduction",
		mustApp("hello-world", "Hello World",
			exampleboard.WithIcon("🌎"),
			exampleboard.WithDescription("The simplest Qwik app."),
		),
		mustApp("counter", "Counter",
			exampleboard.WithIcon("🔢"),
			exampleboard.WithDescription("A button that counts clicks with `useSignal`."),
		),
	)
	if err != nil {
		slog.Error("failed to create section", "error", err)
		os.Exit(1)
	}

	visibility, err := exampleboard.NewSection("visibility", "Visibility",
		mustApp("clock", "Clock",
			exampleboard.WithIcon("⏰"),
			exampleboard.WithDescription("Runs a task only once the component is **visible**."),
		),
	)
	if err != nil {
		slog.Error("failed to create section", "error", err)
		os.Exit(1)
	}

	eb, err := exampleboard.New(
		exampleboard.WithSections(intro, visibility),
		exampleboard.WithPort(8080),
		exampleboard.WithContributeURL("https://github.com/QwikDev/qwik/tree/main/packages/docs/src/routes/examples/apps"),
		exampleboard.WithSelectCallback(func(ev exampleboard.SelectEvent) {
			if !ev.Found {
				slog.Warn("unknown example selected", "app", ev.AppID, "session", ev.SessionID)
			}
		}),
	)
	if err != nil {
		slog.Error("failed to create exampleboard", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("  ExampleBoard Demo")
	fmt.Printf("  Open http://localhost:%d in your browser\n", eb.Port())
	fmt.Printf("  %d sections, starting at %s\n", len(eb.Sections()), eb.DefaultApp())
	fmt.Println("  Press Ctrl+C to stop")
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := eb.Start(ctx); err != nil {
		slog.Error("exampleboard error", "error", err)
		os.Exit(1)
	}
}
