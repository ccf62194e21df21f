package jobs

import (
	"net/url"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

var (
	htmlMarkupRe = regexp.MustCompile(`(?i)<(html|body|div|p|ul|ol|li|br|h[1-6]|span|strong|b|section|table)[\s>/]`)
	htmlPageRe   = regexp.MustCompile(`(?i)<(html|body)[\s>]`)
)

// Page chrome that never belongs to the ad itself.
var boilerplateSelectors = []string{
	"script", "style", "noscript", "iframe", "svg", "form",
	"header", "footer", "nav", "aside",
	".cookie-banner", ".advertisement", ".sidebar",
	"[role=navigation]", "[role=banner]", "[role=contentinfo]",
}

// Relative links in a pasted page resolve against this; they are dropped anyway.
var adBaseURL = &url.URL{Scheme: "https", Host: "job-ad.invalid"}

// LooksLikeHTML reports whether s carries common block or inline markup.
func LooksLikeHTML(s string) bool {
	return htmlMarkupRe.MatchString(s)
}

// AdText turns a pasted job ad into plain text. A full saved page is reduced
// to its main content first; markup is converted to markdown so list
// structure survives. Plain input is returned trimmed.
func AdText(s string) string {
	s = strings.TrimSpace(s)
	if !LooksLikeHTML(s) {
		return s
	}
	body := stripBoilerplate(s)
	if htmlPageRe.MatchString(s) {
		if main := mainContent("<html><body>" + body + "</body></html>"); main != "" {
			body = main
		}
	}
	if md, err := htmltomarkdown.ConvertString(body); err == nil && strings.TrimSpace(md) != "" {
		return strings.TrimSpace(md)
	}
	return htmlText(body)
}

// mainContent runs readability over a whole page. Empty when nothing
// article-like was found.
func mainContent(page string) string {
	article, err := readability.FromReader(strings.NewReader(page), adBaseURL)
	if err != nil || strings.TrimSpace(article.TextContent) == "" {
		return ""
	}
	return article.Content
}

// stripBoilerplate drops navigation, scripts and similar chrome and returns
// the remaining body markup.
func stripBoilerplate(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find(strings.Join(boilerplateSelectors, ", ")).Remove()
	out, err := doc.Find("body").First().Html()
	if err != nil || strings.TrimSpace(out) == "" {
		return s
	}
	return out
}

// htmlText collects text nodes outside script and style elements.
func htmlText(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if sb.Len() > 0 {
					sb.WriteByte('\n')
				}
				sb.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sb.String()
}
