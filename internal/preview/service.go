package preview

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/featherworks/aviary/internal/platform/apperr"
	"github.com/featherworks/aviary/internal/platform/constants"
)

var whitespace = regexp.MustCompile(`\s+`)

// Service fetches and extracts link previews.
type Service struct {
	client *http.Client
	logger *slog.Logger
}

// NewService constructs the preview service. A nil client gets a default
// with the standard fetch timeout.
func NewService(client *http.Client, logger *slog.Logger) *Service {
	if client == nil {
		client = &http.Client{Timeout: constants.PreviewFetchTimeout}
	}
	return &Service{
		client: client,
		logger: logger,
	}
}

// Scrape performs a single outbound GET and extracts the preview.
//
// Upstream 401/403 map to an access-denied error; any other non-2xx is
// mirrored back with the upstream status. There is no retry and no cache.
func (service *Service) Scrape(context context.Context, targetURL string) (*Result, error) {
	request, err := http.NewRequestWithContext(context, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, apperr.ValidationError("Invalid URL")
	}

	response, err := service.client.Do(request)
	if err != nil {
		service.logger.Error("scrape_fetch_failed", slog.String("url", targetURL), slog.Any("error", err))
		ae := apperr.Upstream(http.StatusInternalServerError, "Failed to scrape URL")
		ae.Cause = err
		return nil, ae
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		if response.StatusCode == http.StatusForbidden || response.StatusCode == http.StatusUnauthorized {
			return nil, apperr.Forbidden("Access denied to this URL. It might require login or block bots.")
		}
		return nil, apperr.Upstream(response.StatusCode,
			"Failed to fetch URL: "+response.Status)
	}

	document, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		service.logger.Error("scrape_parse_failed", slog.String("url", targetURL), slog.Any("error", err))
		ae := apperr.Upstream(http.StatusInternalServerError, "Failed to scrape URL")
		ae.Cause = err
		return nil, ae
	}

	return extract(document), nil
}

// extract pulls the preview fields from a parsed document.
func extract(document *goquery.Document) *Result {
	title := document.Find(`meta[property="og:title"]`).AttrOr("content", "")
	if title == "" {
		title = document.Find("title").Text()
	}

	description := document.Find(`meta[property="og:description"]`).AttrOr("content", "")
	if description == "" {
		description = document.Find(`meta[name="description"]`).AttrOr("content", "")
	}

	image := document.Find(`meta[property="og:image"]`).AttrOr("content", "")

	// Strip chrome before reading body text.
	document.Find("script, style, nav, footer, header, aside").Remove()

	content := document.Find("article").Text()
	if content == "" {
		content = document.Find("main").Text()
	}
	if content == "" {
		content = document.Find("body").Text()
	}

	return &Result{
		Title:       title,
		Description: description,
		Image:       image,
		Content:     excerpt(content),
	}
}

// excerpt collapses whitespace and truncates to the content budget.
// The ellipsis is always appended, matching the preview card rendering.
func excerpt(raw string) string {
	clean := strings.TrimSpace(whitespace.ReplaceAllString(raw, " "))

	runes := []rune(clean)
	if len(runes) > ContentBudget {
		runes = runes[:ContentBudget]
	}
	return string(runes) + "..."
}
