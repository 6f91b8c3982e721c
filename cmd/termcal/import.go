package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"termcal/internal"
	"termcal/internal/google"
	"termcal/internal/importer"
	"termcal/internal/sqlite"
)

var ImportCommand = _importCommand{
	Name:        "import",
	Description: "Import events from Google Calendar",
}

type _importCommand struct {
	Name        string
	Description string
}

func (c _importCommand) Run(ctx context.Context, dbFilename string, verbose bool, args []string) error {
	var (
		calendarID string
		from, to   internal.Date
	)

	fs := flag.NewFlagSet(c.Name, flag.ExitOnError)
	fs.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s %s:\n", os.Args[0], fs.Name())
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&calendarID, "calendar-id", "primary", "google calendar to import from")
	fs.Var(&from, "from", "start of the import window (e.g. 2024-01-01)")
	fs.Var(&to, "to", "end of the import window (exclusive)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if from.IsZero() {
		from = internal.Today().Move(internal.FirstOfMonth)
	}
	if to.IsZero() {
		to = from.Move(internal.NextMonth).Move(internal.NextMonth).Move(internal.NextMonth)
	}

	client, err := newGoogleClient(verbose)
	if err != nil {
		return err
	}

	tok, err := google.LoadToken(cfg.Google.TokenFile)
	if err != nil {
		tok, err = client.Login(ctx, func(authURL string) {
			fmt.Fprintf(flag.CommandLine.Output(), "Go to the following link in your browser\n%s\n", authURL)
		})
		if err != nil {
			return fmt.Errorf("google: logging in: %v", err)
		}
		if err := google.SaveToken(cfg.Google.TokenFile, tok); err != nil {
			return fmt.Errorf("saving token: %v", err)
		}
	}

	db, err := sql.Open(sqlite.DriverName, dbFilename)
	if err != nil {
		return err
	}
	defer db.Close()

	storage := sqlite.NewStorage(db)

	it, err := client.Events(ctx, tok, calendarID, from, to)
	if err != nil {
		return err
	}

	imp := importer.New(flag.CommandLine.Output(), storage)
	return imp.Run(ctx, it)
}
