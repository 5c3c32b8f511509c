// Package maplink pulls latitude/longitude out of pasted Google Maps links.
//
// Extraction is best effort: a fixed, ordered list of patterns is tried and
// the first one that matches wins.
package maplink

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrNoCoordinates = errors.New("unable to parse latitude/longitude from maps link")

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type matcher struct {
	name string
	re   *regexp.Regexp
}

const num = `(-?\d+\.?\d*)`

var matchers = []matcher{
	{"at", regexp.MustCompile(`@` + num + `,\s*` + num)},
	{"data", regexp.MustCompile(`!3d` + num + `!4d` + num)},
	{"ll-path", regexp.MustCompile(`/\?ll=` + num + `,\s*` + num)},
	{"query", regexp.MustCompile(`(?:q|query|ll)=` + num + `,\s*` + num)},
	{"place", regexp.MustCompile(`/maps/place/` + num + `,\s*` + num)},
	{"pair", regexp.MustCompile(num + `,\s*` + num)},
}

// Extract runs the matchers in order against link.
func Extract(link string) (Coordinates, bool) {
	if strings.TrimSpace(link) == "" {
		return Coordinates{}, false
	}
	for _, m := range matchers {
		sub := m.re.FindStringSubmatch(link)
		if sub == nil {
			continue
		}
		lat, err1 := strconv.ParseFloat(sub[1], 64)
		lng, err2 := strconv.ParseFloat(sub[2], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		return Coordinates{Latitude: lat, Longitude: lng}, true
	}
	return Coordinates{}, false
}

// Resolver follows share-link redirects before extracting.
type Resolver struct {
	Client *http.Client
}

func NewResolver(timeout time.Duration) *Resolver {
	return &Resolver{Client: &http.Client{Timeout: timeout}}
}

// Resolve returns the final URL after redirects, or link itself on any failure.
func (r *Resolver) Resolve(ctx context.Context, link string) string {
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return link
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return link
	}
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return link
	}
	defer res.Body.Close()
	if res.Request == nil || res.Request.URL == nil {
		return link
	}
	return res.Request.URL.String()
}

// Coordinates tries the resolved link first, then the link as pasted.
func (r *Resolver) Coordinates(ctx context.Context, link string) (Coordinates, error) {
	resolved := r.Resolve(ctx, link)
	if c, ok := Extract(resolved); ok {
		return c, nil
	}
	if c, ok := Extract(link); ok {
		return c, nil
	}
	return Coordinates{}, ErrNoCoordinates
}
