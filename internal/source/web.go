package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
)

// DefaultTimeout bounds a page fetch when no timeout is configured.
const DefaultTimeout = 10 * time.Second

var validate = validator.New(validator.WithRequiredStructEnabled())

// Fetcher downloads web pages.
type Fetcher struct {
	Client    *http.Client  // nil uses http.DefaultClient
	Timeout   time.Duration // 0 uses DefaultTimeout
	UserAgent string
	TextOnly  bool // reduce HTML to its visible text before returning it
}

// CheckURL rejects anything that is not an absolute http or https URL.
func CheckURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if err := validate.Var(raw, "required,url"); err != nil {
		return alerr.New(alerr.ErrInvalidURL, "invalid URL").
			With("url", raw).
			WithHelp("use a full address such as https://example.com/page")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return alerr.New(alerr.ErrInvalidURL, "only http and https URLs are supported").
			With("url", raw)
	}
	return nil
}

// Fetch GETs rawURL and returns the decoded response body.
// Transport failures and timeouts yield ErrFetch; non-2xx responses yield ErrFetchStatus.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if err := CheckURL(rawURL); err != nil {
		return "", err
	}

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", alerr.Wrap(alerr.ErrInvalidURL, err, "invalid URL").With("url", rawURL)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	slog.Debug("fetching page", "url", rawURL, "timeout", timeout)
	start := time.Now()

	resp, err := client.Do(req)
	if err != nil {
		e := alerr.Wrap(alerr.ErrFetch, err, "failed to fetch page").With("url", rawURL)
		if errors.Is(err, context.DeadlineExceeded) {
			e.WithHelp(fmt.Sprintf("the page did not answer within %s; raise fetch_timeout or pass --timeout", timeout))
		}
		return "", e
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", alerr.Newf(alerr.ErrFetchStatus, "server answered %s", resp.Status).
			With("url", rawURL).
			With("status", resp.StatusCode)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", alerr.Wrap(alerr.ErrFetch, err, "unsupported response encoding").With("url", rawURL)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", alerr.Wrap(alerr.ErrFetch, err, "failed to read response body").With("url", rawURL)
	}

	slog.Debug("fetched page", "url", rawURL, "status", resp.StatusCode, "bytes", len(data), "elapsed", time.Since(start))

	if f.TextOnly {
		return HTMLText(string(data))
	}
	return string(data), nil
}

// HTMLText returns the visible text of an HTML document, one text node per line
// in document order. The datetime attribute of a <time> element is emitted just
// before its content. Scripts and styles are dropped.
func HTMLText(document string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return "", alerr.Wrap(alerr.ErrHTMLExtract, err, "failed to parse HTML")
	}

	doc.Find("script, style, noscript, template").Remove()

	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				lines = append(lines, text)
			}
		case html.ElementNode:
			if n.Data == "time" {
				for _, a := range n.Attr {
					if a.Key == "datetime" && a.Val != "" {
						lines = append(lines, a.Val)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}

	return strings.Join(lines, "\n"), nil
}
