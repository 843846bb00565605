package knowledge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longDescription = `&lt;p&gt;A rich description with plenty of substance already, long enough that the fetcher never needs to go read the linked page for more context.&lt;/p&gt;`

func rssBody(pageURL string) string {
	return `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>Consciousness research advances</title>
      <description>` + longDescription + `</description>
      <link>https://example.com/a</link>
    </item>
    <item>
      <title>Second story</title>
      <description>thin summary</description>
      <link>` + pageURL + `</link>
    </item>
    <item>
      <title>Third story</title>
      <description>another one</description>
      <link>https://example.com/c</link>
    </item>
  </channel>
</rss>`
}

func TestFetchItemsParsesRSS(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/feed", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssBody(srv.URL + "/page")))
	})
	mux.HandleFunc("/page", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><p>The full article text lives here and carries considerably more detail than the feed summary did.</p></body></html>`))
	})

	f := NewFeedFetcher(2 * time.Second)
	items, err := f.FetchItems(context.Background(), srv.URL+"/feed", 2)
	require.NoError(t, err)
	require.Len(t, items, 2, "maxItems caps the result")

	assert.Equal(t, "Consciousness research advances", items[0].Title)
	assert.Contains(t, items[0].Summary, "rich description", "markup is stripped from descriptions")
	assert.NotContains(t, items[0].Summary, "<p>")

	assert.Contains(t, items[1].Summary, "full article text", "thin summaries are extended from the linked page")
}

func TestFetchItemsRejectsHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewFeedFetcher(2 * time.Second)
	_, err := f.FetchItems(context.Background(), srv.URL, 5)
	assert.Error(t, err)
}

func TestGatherCategorySkipsFailingFeeds(t *testing.T) {
	fetcher := &fakeFetcher{err: context.DeadlineExceeded}
	fragments := GatherCategory(context.Background(), fetcher, DefaultInterestScorer(), "science", 5)
	assert.Empty(t, fragments, "feed failures are skipped, never fatal")
}

func TestGatherCategoryUnknownCategory(t *testing.T) {
	fragments := GatherCategory(context.Background(), &fakeFetcher{}, DefaultInterestScorer(), "astrology", 5)
	assert.Nil(t, fragments)
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "hello world", stripTags("<p>hello <b>world</b></p>"))
	assert.Equal(t, "no markup here", stripTags("no markup here"))
	assert.Equal(t, "a & b", stripTags("a &amp; b"))
}

func TestExtractPageText(t *testing.T) {
	page := `<html><head><script>var x = "this script text is long enough to matter";</script></head>
<body><nav>navigation links that are definitely long enough to count here</nav>
<p>This is the substantial article body text that should absolutely be extracted from the page.</p>
</body></html>`

	text := ExtractPageText(strings.NewReader(page), 500)
	assert.Contains(t, text, "substantial article body")
	assert.NotContains(t, text, "script text", "script subtrees are skipped")
	assert.NotContains(t, text, "navigation links", "nav subtrees are skipped")
}
