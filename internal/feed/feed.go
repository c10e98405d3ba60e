// Package feed renders stored broadcasts as RSS 2.0.
package feed

import (
	"encoding/xml"
	"fmt"

	"newsletter_sync/internal/domain"
)

// RFC 1123 with an explicit GMT zone, the conventional RSS pubDate form.
const pubDateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

type Config struct {
	Title       string
	Description string
	BaseURL     string
}

type rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Items       []item `xml:"item"`
}

type item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description *cdata `xml:"description,omitempty"`
}

// cdata wraps the enriched html verbatim. Titles and channel metadata
// go through regular xml escaping instead.
type cdata struct {
	Text string `xml:",cdata"`
}

// Build renders the feed document. htmlByID carries the enriched html
// per broadcast id; broadcasts without an entry appear in the feed
// without a description.
func Build(cfg Config, broadcasts []domain.Broadcast, htmlByID map[string]string) ([]byte, error) {
	doc := rss{
		Version: "2.0",
		Channel: channel{
			Title:       cfg.Title,
			Link:        cfg.BaseURL,
			Description: cfg.Description,
		},
	}

	for _, b := range broadcasts {
		it := item{
			Title:   itemTitle(b),
			Link:    cfg.BaseURL + "/broadcasts/" + b.ID,
			GUID:    b.ID,
			PubDate: b.PublishedAt().UTC().Format(pubDateFormat),
		}
		if html, ok := htmlByID[b.ID]; ok && html != "" {
			it.Description = &cdata{Text: html}
		}
		doc.Channel.Items = append(doc.Channel.Items, it)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal feed: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func itemTitle(b domain.Broadcast) string {
	if b.Subject != "" {
		return b.Subject
	}
	return b.Name
}
