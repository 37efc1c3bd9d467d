package components

import (
	"context"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Waddenn/filmoria/internal/catalog"
)

// ArtState tracks whether a card's image could be fetched.
type ArtState int

const (
	ArtLoading ArtState = iota
	ArtLoaded
	ArtFailed
)

func (s ArtState) String() string {
	switch s {
	case ArtLoaded:
		return "loaded"
	case ArtFailed:
		return "failed"
	}
	return "loading"
}

// MsgArtwork reports the outcome of one probe.
type MsgArtwork struct {
	URL   string
	State ArtState
}

const probeTimeout = 10 * time.Second

// ProbeArtwork checks url with a HEAD request. Failures are not logged; the
// card just falls back to the placeholder.
func ProbeArtwork(client *http.Client, url string) tea.Cmd {
	return func() tea.Msg {
		if url == "" || catalog.IsFallback(url) {
			return MsgArtwork{URL: url, State: ArtFailed}
		}
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
		if err != nil {
			return MsgArtwork{URL: url, State: ArtFailed}
		}
		resp, err := client.Do(req)
		if err != nil {
			return MsgArtwork{URL: url, State: ArtFailed}
		}
		resp.Body.Close()

		ct := resp.Header.Get("Content-Type")
		if resp.StatusCode/100 != 2 || (ct != "" && !strings.HasPrefix(ct, "image/")) {
			return MsgArtwork{URL: url, State: ArtFailed}
		}
		return MsgArtwork{URL: url, State: ArtLoaded}
	}
}

// Artwork remembers probe results for the lifetime of a screen. It is only
// touched from Update.
type Artwork struct {
	client   *http.Client
	states   map[string]ArtState
	inflight map[string]bool
}

// NewArtwork returns a tracker; a nil client disables probing and every
// image stays in the loading state.
func NewArtwork(client *http.Client) *Artwork {
	return &Artwork{
		client:   client,
		states:   map[string]ArtState{},
		inflight: map[string]bool{},
	}
}

func (a *Artwork) State(url string) ArtState {
	if catalog.IsFallback(url) {
		return ArtFailed
	}
	return a.states[url]
}

// Probe starts a probe for every url not yet known or in flight.
func (a *Artwork) Probe(urls ...string) tea.Cmd {
	if a.client == nil {
		return nil
	}
	var cmds []tea.Cmd
	for _, u := range urls {
		if catalog.IsFallback(u) || a.inflight[u] {
			continue
		}
		if _, known := a.states[u]; known {
			continue
		}
		a.inflight[u] = true
		cmds = append(cmds, ProbeArtwork(a.client, u))
	}
	return tea.Batch(cmds...)
}

func (a *Artwork) Update(msg MsgArtwork) {
	delete(a.inflight, msg.URL)
	a.states[msg.URL] = msg.State
}
