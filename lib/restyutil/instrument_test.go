package restyutil

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	lock     sync.Mutex
	messages map[string]string
}

func (o *memoryOutput) Write(id string, contents string) {
	o.lock.Lock()
	defer o.lock.Unlock()
	o.messages[id] = contents
}

func withDebugLogging(t testing.TB) {
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() {
		slog.SetDefault(previous)
	})
}

func TestInstrumentClient(t *testing.T) {
	withDebugLogging(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`{"data": {}}`))
	}))
	defer server.Close()

	out := &memoryOutput{messages: map[string]string{}}
	client := resty.New()
	InstrumentClient(client, nil, out)

	res, err := client.R().
		SetContext(context.Background()).
		Get(server.URL + "/fr/campaign_financings")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode())

	require.Len(t, out.messages, 1)
	dump := out.messages["1"]
	require.True(t, strings.HasPrefix(dump, "---- REQUEST ----"))
	require.Contains(t, dump, "/fr/campaign_financings")
	require.Contains(t, dump, `{"data": {}}`)
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "resty")
	out, err := NewFilesystemOutput(dir)
	require.NoError(t, err)

	out.Write("7", "hello")
	contents, err := os.ReadFile(filepath.Join(dir, "7.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(contents))
}

func TestFormatRequestBody(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://example.com/fr/campaign_financings", nil)
	require.NoError(t, err)
	require.Equal(t, "", formatRequestBody(req))

	req.GetBody = func() (io.ReadCloser, error) {
		return nil, nil
	}
	require.Equal(t, "", formatRequestBody(req))

	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(`{"lang": "fr"}`)), nil
	}
	require.Equal(t, `{"lang": "fr"}`, formatRequestBody(req))
}
