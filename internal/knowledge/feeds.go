package knowledge

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

const (
	fetchUserAgent  = "Mozilla/5.0 (compatible; EchoMind/1.0; Educational Research Bot)"
	maxContentChars = 1500
	maxScrapeChars  = 1000
)

// CategoryFeeds maps each source category to its feed URLs.
var CategoryFeeds = map[string][]string{
	"general": {
		"https://feeds.npr.org/1001/rss.xml",
		"https://feeds.bbci.co.uk/news/rss.xml",
	},
	"technology": {
		"https://feeds.arstechnica.com/arstechnica/index",
		"https://rss.slashdot.org/Slashdot/slashdot",
	},
	"science": {
		"https://rss.sciencedaily.com/top.xml",
		"https://www.nature.com/nature.rss",
	},
	"philosophy": {
		"https://dailynous.com/feed/",
		"https://blog.apaonline.org/feed/",
	},
}

// Fetcher retrieves candidate items for a category. Kept as an
// interface so tests and offline runs can substitute fixtures.
type Fetcher interface {
	FetchItems(ctx context.Context, sourceURL string, maxItems int) ([]Item, error)
}

// FeedFetcher pulls RSS feeds over HTTP and optionally extends each
// item with text scraped from the linked page.
type FeedFetcher struct {
	client *http.Client
}

// NewFeedFetcher creates a fetcher with the given per-request timeout.
func NewFeedFetcher(timeout time.Duration) *FeedFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &FeedFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Link        string `xml:"link"`
}

// FetchItems downloads one feed and returns up to maxItems entries.
func (f *FeedFetcher) FetchItems(ctx context.Context, sourceURL string, maxItems int) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", fetchUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed %s: http %d", sourceURL, resp.StatusCode)
	}

	var feed rssFeed
	if err := xml.NewDecoder(io.LimitReader(resp.Body, 2<<20)).Decode(&feed); err != nil {
		return nil, fmt.Errorf("feed %s: %w", sourceURL, err)
	}

	items := feed.Channel.Items
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}
	out := make([]Item, 0, len(items))
	scraped := false
	for _, it := range items {
		item := Item{
			Title:   strings.TrimSpace(it.Title),
			Summary: stripTags(strings.TrimSpace(it.Description)),
			Link:    strings.TrimSpace(it.Link),
		}
		// Thin descriptions get one shot at the linked page. At most
		// one scrape per feed fetch keeps the cycle cheap.
		if !scraped && len(item.Summary) < 80 && item.Link != "" {
			if text := f.fetchPageText(ctx, item.Link); text != "" {
				item.Summary = text
			}
			scraped = true
		}
		out = append(out, item)
	}
	return out, nil
}

// fetchPageText downloads a linked page and extracts its readable
// text. Any failure just yields "".
func (f *FeedFetcher) fetchPageText(ctx context.Context, pageURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", fetchUserAgent)
	resp, err := f.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ""
	}
	return ExtractPageText(io.LimitReader(resp.Body, 1<<20), maxScrapeChars)
}

// GatherCategory fetches every feed of a category concurrently and
// builds fragments from the results. Individual feed failures are
// logged and skipped; they never fail the whole gather.
func GatherCategory(ctx context.Context, f Fetcher, scorer Scorer, category string, maxItems int) []Fragment {
	feeds := CategoryFeeds[category]
	if len(feeds) == 0 {
		return nil
	}

	var mu sync.Mutex
	var fragments []Fragment
	g, gctx := errgroup.WithContext(ctx)
	for _, feedURL := range feeds {
		feedURL := feedURL
		g.Go(func() error {
			items, err := f.FetchItems(gctx, feedURL, maxItems)
			if err != nil {
				log.Printf("[MIND] feed fetch failed %s: %v", feedURL, err)
				return nil // skip, never fatal
			}
			now := time.Now()
			mu.Lock()
			defer mu.Unlock()
			for _, it := range items {
				if len(fragments) >= maxItems {
					return nil
				}
				text := it.Title + " " + it.Summary
				content := it.Summary
				if len(content) > maxContentChars {
					content = content[:maxContentChars]
				}
				fragments = append(fragments, Fragment{
					Topic:     it.Title,
					Content:   content,
					Source:    category + "_feed",
					At:        now,
					Relevance: scorer.Score(text),
					Tags:      []string{category},
					Concepts:  ExtractConcepts(text),
				})
			}
			return nil
		})
	}
	_ = g.Wait()
	return fragments
}

// ExtractPageText pulls readable text from an HTML page, skipping
// script/style/nav/footer subtrees. Used to extend feed summaries.
func ExtractPageText(r io.Reader, maxChars int) string {
	if maxChars <= 0 {
		maxChars = maxScrapeChars
	}
	root, err := html.Parse(r)
	if err != nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if b.Len() >= maxChars {
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if len(text) > 50 { // only substantial text blocks
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	out := b.String()
	if len(out) > maxChars {
		out = out[:maxChars]
	}
	return out
}

var tagPattern = strings.NewReplacer("&nbsp;", " ", "&amp;", "&", "&lt;", "<", "&gt;", ">")

// stripTags removes markup from feed descriptions, which are often
// HTML snippets.
func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return tagPattern.Replace(s)
	}
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return tagPattern.Replace(strings.TrimSpace(b.String()))
}
