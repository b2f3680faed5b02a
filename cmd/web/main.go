// Command web serves the sales analysis over HTTP: the JSON report and
// summaries, CSV and Excel exports, chart pages, and Prometheus metrics.
package main

import (
	"context"
	"fmt"
	"os"

	"salespulse/internal/app"
)

func main() {
	ctx := context.Background()

	application, err := app.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "web: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		application.Logger.Error("server exited with error", "error", err.Error())
		os.Exit(1)
	}
}
