package github

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const pageLength = 100

// pageIterator walks a paged list endpoint. The first request carries
// the fixed page-size parameter; every follow-up hits the exact URL the
// server advertised under rel="next" in the Link header.
type pageIterator[T any] struct {
	transport Transport
	firstURL  string
	decode    func([]byte) ([]T, error)
	hasNext   bool
	nextURL   string
}

func newPageIterator[T any](
	transport Transport,
	requestURL string,
	decode func([]byte) ([]T, error),
) *pageIterator[T] {
	return &pageIterator[T]{
		transport: transport,
		firstURL:  withPageLength(requestURL),
		decode:    decode,
		hasNext:   true,
	}
}

func withPageLength(url string) string {
	if strings.Contains(url, "per_page=") {
		return url
	}

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}

	return fmt.Sprintf("%s%sper_page=%d", url, sep, pageLength)
}

func (i *pageIterator[T]) HasNext() bool {
	return i.hasNext
}

// GetAll concatenates all pages in fetch order. Page order is
// authoritative; nothing is deduplicated or resorted.
func (i *pageIterator[T]) GetAll() ([]T, error) {
	result := []T{}
	for i.HasNext() {
		page, err := i.Next()
		if err != nil {
			return nil, err
		}

		result = append(result, page...)
	}

	return result, nil
}

func (i *pageIterator[T]) Next() ([]T, error) {
	if !i.hasNext {
		return nil, nil
	}

	url := i.nextURL
	if url == "" {
		url = i.firstURL
	}

	r, err := i.transport.Get(url, nil)
	if err != nil {
		i.hasNext = false
		return nil, err
	}
	if r.StatusCode >= 300 {
		i.hasNext = false
		return nil, errorFromResponse("GET", url, r)
	}

	i.nextURL = parseLinkHeader(r.Header.Get("Link"))["next"]
	i.hasNext = i.nextURL != ""

	log.Debug().
		Str("url", url).
		Bool("hasNext", i.hasNext).
		Msg("Fetched page")

	return i.decode(r.Body)
}

// parseLinkHeader extracts the rel -> URL relations from a Link header
// of the form `<url>; rel="name", <url>; rel="name"`. Entries that do
// not parse are skipped; the rest of the header is still honored.
func parseLinkHeader(header string) map[string]string {
	links := map[string]string{}

	for _, entry := range strings.Split(header, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ";")
		target := strings.TrimSpace(parts[0])
		if len(parts) < 2 ||
			!strings.HasPrefix(target, "<") ||
			!strings.HasSuffix(target, ">") {
			log.Warn().
				Str("entry", entry).
				Msg("Skipping unparsable Link header entry")
			continue
		}

		rel := ""
		for _, param := range parts[1:] {
			param = strings.TrimSpace(param)
			if strings.HasPrefix(param, `rel="`) && strings.HasSuffix(param, `"`) {
				rel = param[len(`rel="`) : len(param)-1]
			}
		}
		if rel == "" {
			log.Warn().
				Str("entry", entry).
				Msg("Skipping Link header entry without a rel parameter")
			continue
		}

		links[rel] = target[1 : len(target)-1]
	}

	return links
}
