package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter_sync/internal/domain"
)

var testConfig = Config{
	Title:       "My Newsletter",
	Description: "Weekly notes",
	BaseURL:     "https://example.com",
}

func TestBuild_EnrichedItem(t *testing.T) {
	sent := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	broadcasts := []domain.Broadcast{
		{ID: "b1", AudienceID: "a1", Subject: "Hi", From: "x@y.com", SentAt: &sent},
	}

	out, err := Build(testConfig, broadcasts, map[string]string{"b1": "<p>Hi</p>"})
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, `<rss version="2.0">`)
	assert.Contains(t, xml, "<title>Hi</title>")
	assert.Contains(t, xml, "<pubDate>Tue, 02 Jan 2024 00:00:00 GMT</pubDate>")
	// The stored html passes through verbatim inside CDATA.
	assert.Contains(t, xml, "<![CDATA[<p>Hi</p>]]>")
	assert.Contains(t, xml, "<link>https://example.com/broadcasts/b1</link>")
	assert.Contains(t, xml, "<guid>b1</guid>")
}

func TestBuild_UnenrichedItemHasNoDescription(t *testing.T) {
	broadcasts := []domain.Broadcast{
		{ID: "b1", Subject: "Hi", CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
	}

	out, err := Build(testConfig, broadcasts, nil)
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, "<title>Hi</title>")
	assert.NotContains(t, xml, "<description><![CDATA[")
	// sent_at is absent, so created_at supplies the publish date.
	assert.Contains(t, xml, "<pubDate>Mon, 01 Jan 2024 12:00:00 GMT</pubDate>")
}

func TestBuild_EscapesTitles(t *testing.T) {
	broadcasts := []domain.Broadcast{
		{ID: "b1", Subject: "Tips & <tricks>"},
	}

	out, err := Build(Config{Title: "A & B", BaseURL: "https://example.com"}, broadcasts, nil)
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, "<title>A &amp; B</title>")
	assert.Contains(t, xml, "Tips &amp; &lt;tricks&gt;")
	assert.NotContains(t, xml, "<tricks>")
}

func TestBuild_SubjectFallsBackToName(t *testing.T) {
	broadcasts := []domain.Broadcast{
		{ID: "b1", Name: "january-update"},
	}

	out, err := Build(testConfig, broadcasts, nil)
	require.NoError(t, err)

	assert.Contains(t, string(out), "<title>january-update</title>")
}

func TestBuild_EmptyFeed(t *testing.T) {
	out, err := Build(testConfig, nil, nil)
	require.NoError(t, err)

	xml := string(out)
	assert.True(t, strings.HasPrefix(xml, "<?xml"))
	assert.Contains(t, xml, "<title>My Newsletter</title>")
	assert.NotContains(t, xml, "<item>")
}
