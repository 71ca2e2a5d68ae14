/*
main.go - Operator CLI for rendering a stored statement

PURPOSE:
  Renders a statement layout from the database to the terminal. Useful
  for inspecting seeded data and debugging layout definitions without
  running the HTTP server.

USAGE:
  render -db=./finance.db -org=org-demo -layout=income-statement -period=2025-12

FLAGS:
  -db      SQLite database path (default: finance.db)
  -org     Organization id (required)
  -layout  Layout id (required)
  -period  Balance period (required)
  -all     Include hidden lines

SEE ALSO:
  - cmd/server/main.go: The HTTP entry point
  - statement/render.go: The rendering algorithm
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/warp/finance-engine/fincore"
	"github.com/warp/finance-engine/statement"
	"github.com/warp/finance-engine/store/sqlite"
)

func main() {
	dbPath := flag.String("db", "finance.db", "SQLite database path")
	org := flag.String("org", "", "organization id")
	layoutID := flag.String("layout", "", "layout id")
	period := flag.String("period", "", "balance period")
	showAll := flag.Bool("all", false, "include hidden lines")
	flag.Parse()

	if *org == "" || *layoutID == "" || *period == "" {
		flag.Usage()
		os.Exit(2)
	}

	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer store.Close()

	svc := statement.NewService(store)
	inv := fincore.Invocation{OrgID: fincore.OrgID(*org), ActorID: "cli"}

	outcome, err := svc.RenderStatement(context.Background(), inv, *layoutID, *period)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	read, ok := outcome.(fincore.Read)
	if !ok {
		log.Fatalf("unexpected outcome kind %q", outcome.Kind())
	}
	rendered := read.Data.(statement.RenderedStatement)

	fmt.Printf("%s / %s (%s)\n", rendered.Layout.Name, *period, *org)

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Line", "Label", "Amount (minor)"})
	for _, line := range rendered.Result.Value {
		if !line.Visible && !*showAll {
			continue
		}
		label := strings.Repeat("  ", line.IndentLevel) + line.Label
		amount := ""
		if line.Type != statement.LineHeader && line.Type != statement.LineBlank {
			amount = fmt.Sprintf("%d", line.AmountMinor)
		}
		tw.AppendRow(table.Row{line.LineNumber, label, amount})
	}
	tw.Render()

	fmt.Println(rendered.Result.Explanation)
}
