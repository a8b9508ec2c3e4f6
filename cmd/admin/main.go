package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"gigdesk/backend/internal/analysis"
	"gigdesk/backend/internal/dashboard"
	"gigdesk/backend/internal/seed"
)

const usage = `Usage: admin <command> [args]

Commands:
  validate [file]          check the embedded fixtures, or a fixtures YAML file
  gigs                     list gigs with their click rate
  conversations [query]    list conversations, optionally filtered
  earnings                 print the monthly earnings series and total`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	if err := run(os.Stdout, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("admin %s: %v", os.Args[1], err)
	}
}

func run(w io.Writer, command string, args []string) error {
	if command == "validate" {
		return validate(w, args)
	}

	f, err := seed.Load()
	if err != nil {
		return err
	}

	switch command {
	case "gigs":
		return listGigs(w, f)
	case "conversations":
		return listConversations(w, f, strings.Join(args, " "))
	case "earnings":
		return printEarnings(w, f)
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func validate(w io.Writer, args []string) error {
	var (
		f   *seed.Fixtures
		err error
	)
	source := "embedded fixtures"
	if len(args) > 0 {
		source = args[0]
		var data []byte
		if data, err = os.ReadFile(source); err != nil {
			return err
		}
		f, err = seed.Parse(data)
	} else {
		f, err = seed.Load()
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s OK: %d conversations, %d messages, %d gigs, %d months\n",
		source, len(f.Conversations), len(f.Thread), len(f.Gigs), len(f.Earnings))
	return nil
}

func listGigs(w io.Writer, f *seed.Fixtures) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tORDERS\tPRICE\tCLICK RATE")
	for _, g := range dashboard.NewGigBoard(f.Gigs).List() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n", g.ID, g.Title, g.Status, g.OrderCount, g.PriceLabel, g.ClickRateLabel())
	}
	return tw.Flush()
}

func listConversations(w io.Writer, f *seed.Fixtures, query string) error {
	list := dashboard.FilterConversations(f.Conversations, query)
	if len(list) == 0 {
		fmt.Fprintln(w, "No conversations found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCLIENT\tPROJECT\tSTATUS\tUNREAD")
	for _, c := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", c.ID, c.ParticipantName, c.ProjectLabel, c.Status, c.UnreadCount)
	}
	return tw.Flush()
}

func printEarnings(w io.Writer, f *seed.Fixtures) error {
	chart := dashboard.NewEarningsChart(f.Earnings)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, p := range chart.Points() {
		fmt.Fprintf(tw, "%s\t%s\t\n", p.Month, chart.AxisLabel(p.Amount))
	}
	fmt.Fprintf(tw, "Total\t%s\t\n", analysis.Dollars(chart.Total()))
	return tw.Flush()
}
