package overlay

import (
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/chatbase-hero/internal/game"
	"github.com/ugaemi/chatbase-hero/internal/leaderboard"
	"github.com/ugaemi/chatbase-hero/internal/ws"
)

type fakeSource struct {
	frame   *game.Frame
	entries []leaderboard.Entry
}

func (f *fakeSource) Frame() *game.Frame               { return f.frame }
func (f *fakeSource) Leaderboard() []leaderboard.Entry { return f.entries }

func newTestServer(t *testing.T, cfg RouterConfig) *httptest.Server {
	t.Helper()
	if cfg.Source == nil {
		cfg.Source = &fakeSource{
			frame: &game.Frame{Mode: game.ModePlaying, Tick: 7, Width: 200, Height: 150},
			entries: []leaderboard.Entry{
				{Name: "AAA", Score: 500, Level: 3},
				{Name: "BBB", Score: 200, Level: 2},
			},
		}
	}
	cfg.DisableLogging = true
	ts := httptest.NewServer(NewRouter(cfg))
	t.Cleanup(ts.Close)
	return ts
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, RouterConfig{})

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestLeaderboard(t *testing.T) {
	ts := newTestServer(t, RouterConfig{})

	resp, err := http.Get(ts.URL + "/leaderboard")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var body struct {
		Entries []leaderboard.Entry `json:"entries"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Entries, 2)
	assert.Equal(t, "AAA", body.Entries[0].Name)
	assert.Equal(t, 500, body.Entries[0].Score)
}

func TestFrame(t *testing.T) {
	ts := newTestServer(t, RouterConfig{})

	resp, err := http.Get(ts.URL + "/frame")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "playing", body["mode"])
	assert.Equal(t, float64(7), body["tick"])
}

func TestSnapshotPNG(t *testing.T) {
	ts := newTestServer(t, RouterConfig{})

	resp, err := http.Get(ts.URL + "/snapshot.png")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestSnapshotPNG_RateLimited(t *testing.T) {
	ts := newTestServer(t, RouterConfig{SnapshotRate: 1})

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		resp, err := http.Get(ts.URL + "/snapshot.png")
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
		resp.Body.Close()
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}

func TestMetrics(t *testing.T) {
	ts := newTestServer(t, RouterConfig{})

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, RouterConfig{CORSOrigins: []string{"https://overlay.example"}})

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://overlay.example")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "https://overlay.example", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestWebSocket(t *testing.T) {
	t.Run("disabled without hub", func(t *testing.T) {
		ts := newTestServer(t, RouterConfig{})

		resp, err := http.Get(ts.URL + "/ws")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("upgrades with hub", func(t *testing.T) {
		hub := ws.NewHub()
		ctx, cancel := context.WithCancel(context.Background())
		t.Cleanup(cancel)
		go hub.Run(ctx)

		ts := newTestServer(t, RouterConfig{Hub: hub})
		url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		defer conn.Close()

		assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
	})
}
