package modules

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/truthscan/truthscan/internal/model"
	"github.com/truthscan/truthscan/internal/synth"
)

// SocialModule searches Nitter instances for mentions of each derived
// search term, falling back to synthetic posts when every instance fails
type SocialModule struct {
	synthetic model.SyntheticConfig
	cfg       model.SocialConfig
	fetcher   PageFetcher // nil disables live lookups
	gen       *synth.Generator
}

// NewSocialModule creates the social media module
func NewSocialModule(synthetic model.SyntheticConfig, cfg model.SocialConfig, fetcher PageFetcher, gen *synth.Generator) *SocialModule {
	return &SocialModule{
		synthetic: synthetic,
		cfg:       cfg,
		fetcher:   fetcher,
		gen:       gen,
	}
}

// Name returns the module's report tag
func (m *SocialModule) Name() model.ModuleName {
	return model.ModuleSocial
}

// Produce emits one finding per search term. A single attempt is made
// per term per instance: no retries.
func (m *SocialModule) Produce(ctx context.Context, claim *model.Claim) (*model.ModuleResult, error) {
	result := &model.ModuleResult{Module: model.ModuleSocial, Findings: []model.Finding{}}

	for _, term := range claim.SearchTerms {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		posts := m.scrape(ctx, term)

		finding := model.Finding{
			Entity:    term,
			DateRange: claim.DateRange,
			Posts:     posts,
		}

		if len(posts) == 0 {
			if m.synthetic.Enabled {
				finding.Posts = m.gen.Posts(term, m.synthetic.PostsPerTerm, claim.Days)
			} else {
				finding.NoData = true
				result.Partial = true
			}
		}

		result.Findings = append(result.Findings, finding)
	}

	return result, nil
}

// scrape tries each configured Nitter instance in order and returns the
// first non-empty post list
func (m *SocialModule) scrape(ctx context.Context, term string) []model.SocialPost {
	if m.fetcher == nil {
		return nil
	}

	for _, instance := range m.cfg.Instances {
		searchURL := fmt.Sprintf("%s/search?f=tweets&q=%s", instance, url.QueryEscape(term))

		body, err := m.fetcher.Fetch(ctx, searchURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: social lookup via %s: %v\n", instance, err)
			continue
		}

		posts, err := parseTimeline(body, instance, m.cfg.MaxPosts)
		if err != nil || len(posts) == 0 {
			continue
		}
		return posts
	}

	return nil
}

// parseTimeline extracts posts from a Nitter search results page
func parseTimeline(body, instance string, maxPosts int) ([]model.SocialPost, error) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	items := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "timeline-item")
	})

	var posts []model.SocialPost
	for _, item := range items {
		if maxPosts > 0 && len(posts) >= maxPosts {
			break
		}

		post := model.SocialPost{
			Platform:  "Twitter",
			User:      "Unknown",
			Source:    "Nitter scrape via " + instance,
			Synthetic: false,
		}

		if u := findFirst(item, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == "a" && hasClass(n, "username")
		}); u != nil {
			post.User = nodeText(u)
		}

		if c := findFirst(item, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "tweet-content")
		}); c != nil {
			post.Content = nodeText(c)
		}

		if d := findFirst(item, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == "span" && hasClass(n, "tweet-date")
		}); d != nil {
			if a := findFirst(d, func(n *html.Node) bool {
				return n.Type == html.ElementNode && n.Data == "a"
			}); a != nil {
				post.Date = attr(a, "title")
			}
		}

		if post.Content == "" {
			continue
		}
		posts = append(posts, post)
	}

	return posts, nil
}

// findAll returns all nodes matching the predicate, in document order
func findAll(n *html.Node, predicate func(*html.Node) bool) []*html.Node {
	var results []*html.Node

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if predicate(node) {
			results = append(results, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return results
}

// findFirst returns the first node matching the predicate
func findFirst(n *html.Node, predicate func(*html.Node) bool) *html.Node {
	var result *html.Node

	var walk func(*html.Node) bool
	walk = func(node *html.Node) bool {
		if predicate(node) {
			result = node
			return true
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}

	walk(n)
	return result
}

// hasClass checks if a node carries a CSS class
func hasClass(n *html.Node, className string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, class := range strings.Fields(a.Val) {
				if class == className {
					return true
				}
			}
		}
	}
	return false
}

// attr returns an attribute value, or ""
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// nodeText collects trimmed text content below a node
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}

	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := nodeText(c); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
