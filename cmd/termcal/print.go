package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"termcal/internal"
	"termcal/internal/sqlite"
	"termcal/internal/ui"
)

var PrintCommand = _printCommand{
	Name:        "print",
	Description: "Print the month grid and its events",
}

type _printCommand struct {
	Name        string
	Description string
}

func (c _printCommand) Run(ctx context.Context, dbFilename string, verbose bool, args []string) error {
	var single bool

	fs := flag.NewFlagSet(c.Name, flag.ExitOnError)
	fs.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s %s [year] [month]:\n", os.Args[0], fs.Name())
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(&single, "s", false, "print a single month instead of three")
	if err := fs.Parse(args); err != nil {
		return err
	}

	start, err := startDate(fs.Args())
	if err != nil {
		return err
	}

	db, err := sql.Open(sqlite.DriverName, dbFilename)
	if err != nil {
		return err
	}
	defer db.Close()

	storage := sqlite.NewStorage(db)

	months := []internal.Date{start}
	if !single {
		months = []internal.Date{start.Move(internal.PrevMonth), start, start.Move(internal.NextMonth)}
	}

	w := os.Stdout
	styles := ui.DefaultStyles()
	today := internal.Today()

	for i, m := range months {
		if i > 0 {
			fmt.Fprintln(w)
		}
		events, err := storage.EventsByMonth(ctx, m.Year(), m.Month())
		if err != nil {
			return err
		}

		marked := make(map[internal.Date]bool, len(events))
		for _, ev := range events {
			marked[ev.Date] = true
		}

		fmt.Fprintln(w, ui.RenderMonth(styles, m.Year(), m.Month(), internal.Date{}, today, func(d internal.Date) bool {
			return marked[d]
		}))

		for _, ev := range events {
			fmt.Fprintf(w, "%s  %s\n", ev.Date, ev.Text)
		}
	}
	return nil
}
