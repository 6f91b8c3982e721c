package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"termcal/internal/google"
)

var LoginCommand = _loginCommand{
	Name:        "login",
	Description: "Authorize access to your Google calendar",
}

type _loginCommand struct {
	Name        string
	Description string
}

func (c _loginCommand) Run(ctx context.Context, dbFilename string, verbose bool, args []string) error {
	client, err := newGoogleClient(verbose)
	if err != nil {
		return err
	}

	w := flag.CommandLine.Output()

	tok, err := client.Login(ctx, func(authURL string) {
		fmt.Fprintf(w, "Go to the following link in your browser\n%s\n", authURL)
	})
	if err != nil {
		return fmt.Errorf("google: logging in: %v", err)
	}

	if err := google.SaveToken(cfg.Google.TokenFile, tok); err != nil {
		return fmt.Errorf("saving token: %v", err)
	}
	fmt.Fprintf(w, "Token saved to %s\n", cfg.Google.TokenFile)
	return nil
}

func newGoogleClient(verbose bool) (*google.Client, error) {
	credJSON, err := os.ReadFile(cfg.Google.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %v", err)
	}
	client, err := google.NewClient(credJSON)
	if err != nil {
		return nil, err
	}
	client.Verbose = verbose
	return client, nil
}
