package stream

import (
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"vision-inspector/internal/domain/port"
)

type stubFrame struct {
	data    []byte
	encodes int
}

func (f *stubFrame) Bounds() (int, int) { return 1980, 1080 }
func (f *stubFrame) Clone() port.Frame  { return &stubFrame{data: f.data} }
func (f *stubFrame) Close()             {}

func (f *stubFrame) EncodeJPEG() ([]byte, error) {
	f.encodes++
	return f.data, nil
}

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(hub.Handler())
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for hub.clientCount() != want {
		require.Less(t, time.Now(), deadline, "viewer count never reached %d", want)
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHub_ViewerReceivesFrame(t *testing.T) {
	hub := NewHub(0)
	go hub.run()
	defer hub.Close()

	conn := dialHub(t, hub)
	waitForClients(t, hub, 1)

	frame := &stubFrame{data: []byte("jpeg-bytes")}
	require.NoError(t, hub.Show(frame))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg frameMessage
	require.NoError(t, json.Unmarshal(payload, &msg))
	require.Equal(t, base64.StdEncoding.EncodeToString([]byte("jpeg-bytes")), msg.Image)
	require.Equal(t, 1980, msg.Width)
	require.Equal(t, 1080, msg.Height)
}

func TestHub_ShowWithoutViewersSkipsEncoding(t *testing.T) {
	hub := NewHub(0)
	go hub.run()
	defer hub.Close()

	frame := &stubFrame{data: []byte("jpeg-bytes")}
	require.NoError(t, hub.Show(frame))
	require.Zero(t, frame.encodes)
}

func TestHub_PollNeverRequestsStop(t *testing.T) {
	hub := NewHub(0)
	require.False(t, hub.Poll())
}

func TestHub_CloseDisconnectsViewers(t *testing.T) {
	hub := NewHub(0)
	go hub.run()

	conn := dialHub(t, hub)
	waitForClients(t, hub, 1)

	require.NoError(t, hub.Close())
	require.NoError(t, hub.Close())

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
}
