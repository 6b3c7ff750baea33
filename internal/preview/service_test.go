package preview

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherworks/aviary/internal/platform/apperr"
)

func newTestService() *Service {
	return NewService(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestScrape_OpenGraphPreferred(t *testing.T) {
	server := serve(t, http.StatusOK, `<html><head>
		<meta property="og:title" content="Red-tailed Hawk">
		<meta property="og:description" content="A common North American raptor.">
		<meta property="og:image" content="https://example.com/hawk.jpg">
		<title>Fallback Title</title>
	</head><body><article>Soaring high above open fields.</article></body></html>`)

	result, err := newTestService().Scrape(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Red-tailed Hawk", result.Title)
	assert.Equal(t, "A common North American raptor.", result.Description)
	assert.Equal(t, "https://example.com/hawk.jpg", result.Image)
	assert.Equal(t, "Soaring high above open fields....", result.Content)
}

func TestScrape_FallbackChain(t *testing.T) {
	server := serve(t, http.StatusOK, `<html><head>
		<title>Hawk</title>
		<meta name="description" content="Plain meta description.">
	</head><body><p>Body text only.</p></body></html>`)

	result, err := newTestService().Scrape(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Hawk", result.Title, "falls back to the title tag")
	assert.Equal(t, "Plain meta description.", result.Description)
	assert.Empty(t, result.Image, "no og:image means empty string")
	assert.Equal(t, "Body text only....", result.Content)
}

func TestScrape_StripsChrome(t *testing.T) {
	server := serve(t, http.StatusOK, `<html><body>
		<nav>Navigation links</nav>
		<header>Site header</header>
		<main>The real content.</main>
		<footer>Copyright footer</footer>
		<script>var x = 1;</script>
	</body></html>`)

	result, err := newTestService().Scrape(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "The real content....", result.Content)
}

func TestScrape_WhitespaceCollapsedAndTruncated(t *testing.T) {
	long := strings.Repeat("word ", 200)
	server := serve(t, http.StatusOK, `<html><body><article>   `+long+`   </article></body></html>`)

	result, err := newTestService().Scrape(context.Background(), server.URL)
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(result.Content, "..."))
	assert.Len(t, []rune(strings.TrimSuffix(result.Content, "...")), ContentBudget)
	assert.NotContains(t, result.Content, "  ", "runs of whitespace collapse to one space")
}

func TestScrape_AccessDenied(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		server := serve(t, status, "blocked")

		_, err := newTestService().Scrape(context.Background(), server.URL)
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusForbidden, ae.HTTPStatus)
		assert.Equal(t, "Access denied to this URL. It might require login or block bots.", ae.Message)
	}
}

func TestScrape_UpstreamStatusMirrored(t *testing.T) {
	server := serve(t, http.StatusNotFound, "gone")

	_, err := newTestService().Scrape(context.Background(), server.URL)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Contains(t, ae.Message, "Failed to fetch URL")
}

func TestScrape_NetworkFailure(t *testing.T) {
	server := serve(t, http.StatusOK, "")
	url := server.URL
	server.Close()

	_, err := newTestService().Scrape(context.Background(), url)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
	assert.Equal(t, "Failed to scrape URL", ae.Message)
}
