package main

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"termcal/internal/sqlite"
	"termcal/internal/ui"
)

var ViewCommand = _viewCommand{
	Name:        "view",
	Description: "Browse the calendar interactively (default)",
}

type _viewCommand struct {
	Name        string
	Description string
}

func (c _viewCommand) Run(ctx context.Context, dbFilename string, verbose bool, args []string) error {
	start, err := startDate(args)
	if err != nil {
		return err
	}

	db, err := sql.Open(sqlite.DriverName, dbFilename)
	if err != nil {
		return err
	}
	defer db.Close()

	storage := sqlite.NewStorage(db)
	return ui.Run(ctx, storage, start)
}
