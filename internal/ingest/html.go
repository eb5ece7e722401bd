package ingest

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"golang.org/x/net/html"
)

var (
	imageRe     = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRe      = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	headingRe   = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	bulletRe    = regexp.MustCompile(`(?m)^[ \t]*(?:[-*+]|\d+[.)])[ \t]+`)
	quoteRe     = regexp.MustCompile(`(?m)^[ \t]*>[ \t]?`)
	ruleRe      = regexp.MustCompile(`(?m)^[ \t]*(?:[-*_][ \t]*){3,}$`)
	setextRe    = regexp.MustCompile(`(?m)^[ \t]*=+[ \t]*$`)
	fenceRe     = regexp.MustCompile("(?m)^```.*$")
	tableRe     = regexp.MustCompile(`(?m)^[ \t]*\|?(?:[ \t]*:?-+:?[ \t]*\|)+[ \t]*:?-*:?[ \t]*$`)
	emphasisRe  = regexp.MustCompile(`(\*{1,3}|_{1,3}|~~|` + "`" + `)`)
	escapeRe    = regexp.MustCompile(`\\([\\` + "`" + `*_{}\[\]()#+\-.!|>~])`)
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// Page is an HTML document reduced to text.
type Page struct {
	Title string
	Text  string
}

var converter = newConverter()

func newConverter() *md.Converter {
	c := md.NewConverter("", true, nil)
	c.Use(plugin.GitHubFlavored())
	c.Remove("head", "title", "script", "style", "nav", "header", "footer", "aside", "form", "noscript")
	return c
}

// FromHTML converts an HTML document to paragraph text. Block elements
// become paragraphs; markup, link targets, and images are dropped.
func FromHTML(doc string) (Page, error) {
	markdown, err := converter.ConvertString(doc)
	if err != nil {
		return Page{}, err
	}
	return Page{Title: htmlTitle(doc), Text: StripMarkdown(markdown)}, nil
}

// StripMarkdown removes markdown syntax, leaving the words.
func StripMarkdown(s string) string {
	s = Normalize(s)
	s = fenceRe.ReplaceAllString(s, "")
	s = imageRe.ReplaceAllString(s, "")
	s = linkRe.ReplaceAllString(s, "$1")
	s = ruleRe.ReplaceAllString(s, "")
	s = setextRe.ReplaceAllString(s, "")
	s = tableRe.ReplaceAllString(s, "")
	s = headingRe.ReplaceAllString(s, "")
	s = quoteRe.ReplaceAllString(s, "")
	s = bulletRe.ReplaceAllString(s, "")
	s = escapeRe.ReplaceAllString(s, "$1")
	s = emphasisRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "|", " ")

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}
	s = blankRunsRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(s)
}

func htmlTitle(doc string) string {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return ""
	}
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return title
}
