package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
)

var cfg struct {
	DBFilename string
	Verbose    bool
	Google     struct {
		CredentialsFile string
		TokenFile       string
	}
}

func init() {
	flag.StringVar(&cfg.DBFilename, "db", "termcal.db", "sqlite database file")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "verbose output")
	flag.StringVar(&cfg.Google.CredentialsFile, "google-cred", "credentials.json", "credentials file for google import")
	flag.StringVar(&cfg.Google.TokenFile, "google-token", "token.json", "cached oauth token for google import")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt)
		<-ch
		cancel()
	}()

	args := flag.Args()

	var err error
	switch {
	case len(args) > 0 && args[0] == PrintCommand.Name:
		err = PrintCommand.Run(ctx, cfg.DBFilename, cfg.Verbose, args[1:])
	case len(args) > 0 && args[0] == ImportCommand.Name:
		err = ImportCommand.Run(ctx, cfg.DBFilename, cfg.Verbose, args[1:])
	case len(args) > 0 && args[0] == LoginCommand.Name:
		err = LoginCommand.Run(ctx, cfg.DBFilename, cfg.Verbose, args[1:])
	default:
		err = ViewCommand.Run(ctx, cfg.DBFilename, cfg.Verbose, args)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage of %s [options] [command] [year] [month]:\n", os.Args[0])
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range []struct{ Name, Description string }{
		{ViewCommand.Name, ViewCommand.Description},
		{PrintCommand.Name, PrintCommand.Description},
		{ImportCommand.Name, ImportCommand.Description},
		{LoginCommand.Name, LoginCommand.Description},
	} {
		fmt.Fprintf(w, "  %-8s %s\n", c.Name, c.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flag.PrintDefaults()
}
