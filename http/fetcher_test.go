package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/is3ka1/camdict"
	camhttp "github.com/is3ka1/camdict/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPath = "/zht/%E6%90%9C%E7%B4%A2/direct/"

// newDictionaryServer redirects known words to an entry page and everything
// else to a spellcheck page served with 404.
func newDictionaryServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/zht/搜索/direct/"):
			q := r.URL.Query().Get("q")
			if q == "run" {
				http.Redirect(w, r, "/zht/%E8%A9%9E%E5%85%B8/english-chinese-traditional/run", http.StatusFound)
				return
			}
			http.Redirect(w, r, "/zht/spellcheck/english-chinese-traditional/?q="+q, http.StatusFound)
		case strings.HasPrefix(r.URL.Path, "/zht/詞典/"):
			_, _ = w.Write([]byte("<html>entry " + r.Header.Get("User-Agent") + "</html>"))
		case strings.HasPrefix(r.URL.Path, "/zht/spellcheck/"):
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("<html>spellcheck</html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("follows redirect to entry page", func(t *testing.T) {
		t.Parallel()

		server := newDictionaryServer(t)
		fetcher := camhttp.NewFetcher(camhttp.WithBaseURL(server.URL + searchPath))

		resp, err := fetcher.Fetch(context.Background(), "run")

		require.NoError(t, err)
		assert.Equal(t, server.URL+"/zht/%E8%A9%9E%E5%85%B8/english-chinese-traditional/run", resp.URL)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, resp.Success())
		assert.Contains(t, resp.Body, "entry")

		category, err := camdict.Classify(resp.URL)
		require.NoError(t, err)
		assert.Equal(t, camdict.CategoryEntry, category)
	})

	t.Run("returns non-success spellcheck page without error", func(t *testing.T) {
		t.Parallel()

		server := newDictionaryServer(t)
		fetcher := camhttp.NewFetcher(camhttp.WithBaseURL(server.URL + searchPath))

		resp, err := fetcher.Fetch(context.Background(), "runn")

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.False(t, resp.Success())
		assert.Equal(t, "<html>spellcheck</html>", resp.Body)

		category, err := camdict.Classify(resp.URL)
		require.NoError(t, err)
		assert.Equal(t, camdict.CategorySuggestion, category)
	})

	t.Run("sends query and dataset parameters", func(t *testing.T) {
		t.Parallel()

		queries := make(chan map[string][]string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			queries <- r.URL.Query()
		}))
		defer server.Close()

		fetcher := camhttp.NewFetcher(camhttp.WithBaseURL(server.URL + searchPath))

		_, err := fetcher.Fetch(context.Background(), "look up & over")

		require.NoError(t, err)
		query := <-queries
		assert.Equal(t, []string{"look up & over"}, query["q"])
		assert.Equal(t, []string{camhttp.Dataset}, query["datasetsearch"])
	})

	t.Run("sends user agent across redirects", func(t *testing.T) {
		t.Parallel()

		server := newDictionaryServer(t)
		fetcher := camhttp.NewFetcher(
			camhttp.WithBaseURL(server.URL+searchPath),
			camhttp.WithUserAgent("camdict-test"),
		)

		resp, err := fetcher.Fetch(context.Background(), "run")

		require.NoError(t, err)
		assert.Equal(t, "<html>entry camdict-test</html>", resp.Body)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := camhttp.NewFetcher(
			camhttp.WithBaseURL(server.URL+searchPath),
			camhttp.WithTimeout(10*time.Millisecond),
		)

		_, err := fetcher.Fetch(context.Background(), "run")
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := newDictionaryServer(t)
		fetcher := camhttp.NewFetcher(camhttp.WithBaseURL(server.URL + searchPath))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, "run")
		require.Error(t, err)
	})

	t.Run("rate limiter honors context cancellation", func(t *testing.T) {
		t.Parallel()

		server := newDictionaryServer(t)
		fetcher := camhttp.NewFetcher(
			camhttp.WithBaseURL(server.URL+searchPath),
			camhttp.WithRateLimit(0.001),
		)

		_, err := fetcher.Fetch(context.Background(), "run")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err = fetcher.Fetch(ctx, "run")
		require.Error(t, err)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := camhttp.NewFetcher(
			camhttp.WithBaseURL("http://non-existent-host.invalid"+searchPath),
			camhttp.WithTimeout(100*time.Millisecond),
		)

		_, err := fetcher.Fetch(context.Background(), "run")
		require.Error(t, err)
	})

	t.Run("returns invalid error for bad base URL", func(t *testing.T) {
		t.Parallel()

		fetcher := camhttp.NewFetcher(camhttp.WithBaseURL("://bad"))

		_, err := fetcher.Fetch(context.Background(), "run")

		require.Error(t, err)
		assert.Equal(t, camdict.EINVALID, camdict.ErrorCode(err))
	})

	t.Run("uses provided HTTP client", func(t *testing.T) {
		t.Parallel()

		server := newDictionaryServer(t)
		client := &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
		fetcher := camhttp.NewFetcher(
			camhttp.WithBaseURL(server.URL+searchPath),
			camhttp.WithHTTPClient(client),
		)

		resp, err := fetcher.Fetch(context.Background(), "run")

		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.False(t, resp.Success())
	})
}
