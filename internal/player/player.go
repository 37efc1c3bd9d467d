// Package player builds embed player URLs and hands them to the system.
package player

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Waddenn/filmoria/internal/config"
)

const (
	DefaultMovieTemplate = "https://vidsrc-embed.ru/embed/movie?tmdb={id}&autoplay=1"
	DefaultTVTemplate    = "https://vidsrc-embed.ru/embed/tv?tmdb={id}&autoplay=1"
)

type Player struct {
	movieTemplate string
	tvTemplate    string
	opener        string

	start     func(name string, args ...string) error
	writeClip func(string) error
}

func New(cfg config.PlayerConfig) *Player {
	p := &Player{
		movieTemplate: cfg.MovieTemplate,
		tvTemplate:    cfg.TVTemplate,
		opener:        cfg.Opener,
		start:         startDetached,
		writeClip:     clipboard.WriteAll,
	}
	if p.movieTemplate == "" {
		p.movieTemplate = DefaultMovieTemplate
	}
	if p.tvTemplate == "" {
		p.tvTemplate = DefaultTVTemplate
	}
	return p
}

// EmbedURL returns the playback page for a title. Anything but "tv" uses the movie template.
func (p *Player) EmbedURL(kind string, id int) string {
	tmpl := p.movieTemplate
	if kind == "tv" {
		tmpl = p.tvTemplate
	}
	return strings.ReplaceAll(tmpl, "{id}", strconv.Itoa(id))
}

// Open hands url to the configured opener, or the platform default.
func (p *Player) Open(url string) error {
	name, args := OpenerCommand(runtime.GOOS, p.opener)
	if name == "" {
		return fmt.Errorf("no URL opener for %s", runtime.GOOS)
	}
	if err := p.start(name, append(args, url)...); err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	return nil
}

func (p *Player) Copy(url string) error {
	if err := p.writeClip(url); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// OpenerCommand resolves the command that opens a URL. override is split on spaces.
func OpenerCommand(goos, override string) (string, []string) {
	if fields := strings.Fields(override); len(fields) > 0 {
		return fields[0], fields[1:]
	}
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", nil
	}
	return "", nil
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}
