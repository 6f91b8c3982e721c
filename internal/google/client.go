package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"termcal/internal"
)

// Client imports events from a Google calendar. It only ever reads.
type Client struct {
	oauthCfg *oauth2.Config

	Verbose bool
}

func NewClient(credJSON []byte) (*Client, error) {
	oauthCfg, err := google.ConfigFromJSON(credJSON, calendar.CalendarEventsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("google: parsing credentials file: %v", err)
	}

	return &Client{
		oauthCfg: oauthCfg,
	}, nil
}

const defaultSleep = 5 * time.Second

// Events streams the events of calendarID whose start falls in
// [from, to). Cancelled and unparsable entries are skipped.
func (c Client) Events(ctx context.Context, tok *oauth2.Token, calendarID string, from, to internal.Date) (internal.Iterator, error) {
	svc, err := c.calendarSvc(ctx, tok)
	if err != nil {
		return nil, err
	}

	eventsCall := svc.Events.
		List(calendarID).
		Context(ctx).
		ShowDeleted(false).
		SingleEvents(true).
		TimeMin(from.Time().Format(time.RFC3339)).
		TimeMax(to.Time().Format(time.RFC3339))

	it := newEventIterator()
	go c.events(eventsCall, it.events)
	return it, nil
}

func (c Client) events(call *calendar.EventsListCall, eventCh chan eventOrError) {
	c.logf("checking for events")

	defer close(eventCh)

	var nextPageToken string
	for {
		events, err := call.PageToken(nextPageToken).Do()
		if err != nil {
			if shouldRetry(err) {
				time.Sleep(defaultSleep)
				continue
			}
			c.logf("unable to get list of events: %v", err)
			eventCh <- eventOrError{err: err}
			return
		}

		for _, item := range events.Items {
			ev, ok := newEvent(item)
			if !ok {
				continue
			}
			eventCh <- eventOrError{e: ev}
		}
		nextPageToken = events.NextPageToken
		if nextPageToken == "" {
			return
		}
	}
}

// Login runs the loopback-server OAuth flow: promptURL receives the
// authorization link to show the user, and Login blocks until the
// browser redirect delivers the code.
func (c Client) Login(ctx context.Context, promptURL func(authURL string)) (*oauth2.Token, error) {
	state := fmt.Sprintf("termcal-%d", time.Now().UTC().Nanosecond())
	authURL := c.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	promptURL(authURL)

	mux := http.NewServeMux()
	server := &http.Server{
		Addr:    ":8080",
		Handler: mux,
	}

	var (
		token   *oauth2.Token
		authErr error
	)

	mux.HandleFunc("/termcal", func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			go server.Shutdown(ctx)
		}()

		query := req.URL.Query()
		if query.Get("state") != state {
			authErr = errors.New("oauth link is not valid")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		token, authErr = c.oauthCfg.Exchange(ctx, query.Get("code"))
		if authErr != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintln(w, "Unable to retrieve token:", authErr)
			return
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "All good, you can close this window!")
	})

	serverCh := make(chan struct{})
	var svrErr error
	go func() {
		svrErr = server.ListenAndServe()
		close(serverCh)
	}()

	<-serverCh

	if svrErr != nil && svrErr != http.ErrServerClosed {
		return nil, svrErr
	}

	if authErr != nil {
		return nil, authErr
	}

	return token, nil
}

func (c Client) calendarSvc(ctx context.Context, tok *oauth2.Token) (*calendar.Service, error) {
	httpClient := c.oauthCfg.Client(ctx, tok)
	return calendar.NewService(ctx, option.WithHTTPClient(httpClient))
}

func (c Client) logf(format string, a ...any) {
	if c.Verbose {
		internal.Logf(os.Stdout, "google:", format, a...)
	}
}

func shouldRetry(err error) bool {
	var gErr *googleapi.Error
	if !errors.As(err, &gErr) {
		return false
	}

	for _, err := range gErr.Errors {
		if err.Reason == "rateLimitExceeded" {
			return true
		}
	}
	return false
}
