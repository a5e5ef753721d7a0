package stream

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"vision-inspector/internal/domain/port"
)

// frameMessage — кадр живого просмотра в формате для браузера.
type frameMessage struct {
	Image  string `json:"image"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Hub раздаёт аннотированные кадры подключённым зрителям по websocket.
// Реализует вторичную поверхность отображения: остановку сеанса
// зрители запросить не могут.
type Hub struct {
	addr       string
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	mu         sync.RWMutex
	upgrader   websocket.Upgrader
	server     *http.Server
	done       chan struct{}
	closeOnce  sync.Once
}

// NewHub создаёт хаб живого просмотра на указанном порту.
func NewHub(port int) *Hub {
	return &Hub{
		addr:       fmt.Sprintf(":%d", port),
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 1),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		done: make(chan struct{}),
	}
}

// Handler возвращает HTTP-обработчик подключения зрителей.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/live", h.handleLive)
	return mux
}

// Start поднимает HTTP-сервер и цикл рассылки.
func (h *Hub) Start() error {
	listener, err := net.Listen("tcp", h.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", h.addr, err)
	}

	h.server = &http.Server{Handler: h.Handler()}

	go h.run()
	go func() {
		if err := h.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Live view server error: %v", err)
		}
	}()

	log.Printf("Live view is available on ws://localhost%s/live", h.addr)
	return nil
}

// handleLive подключает зрителя и следит за разрывом соединения.
func (h *Hub) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade viewer connection: %v", err)
		return
	}

	h.register <- conn

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				select {
				case h.unregister <- conn:
				case <-h.done:
				}
				return
			}
		}
	}()
}

// run обслуживает регистрацию зрителей и рассылку кадров.
func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			log.Printf("Viewer connected. Total: %d", h.clientCount())

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()
			log.Printf("Viewer disconnected. Total: %d", h.clientCount())

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return
		}
	}
}

// clientCount возвращает число подключённых зрителей.
func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Show кодирует кадр и отправляет его зрителям. При отсутствии зрителей
// кадр пропускается без кодирования; при заполненной очереди — отбрасывается,
// чтобы не задерживать цикл обработки.
func (h *Hub) Show(frame port.Frame) error {
	if h.clientCount() == 0 {
		return nil
	}

	data, err := frame.EncodeJPEG()
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	width, height := frame.Bounds()
	message, err := json.Marshal(frameMessage{
		Image:  base64.StdEncoding.EncodeToString(data),
		Width:  width,
		Height: height,
	})
	if err != nil {
		return fmt.Errorf("marshal frame message: %w", err)
	}

	select {
	case h.broadcast <- message:
	default:
	}
	return nil
}

// Poll никогда не запрашивает остановку: управление у оператора.
func (h *Hub) Poll() bool {
	return false
}

// Close останавливает сервер и отключает зрителей; повторный вызов безопасен.
func (h *Hub) Close() error {
	var err error
	h.closeOnce.Do(func() {
		close(h.done)
		if h.server != nil {
			err = h.server.Close()
		}
	})
	return err
}

// Проверка реализации интерфейса
var _ port.Display = (*Hub)(nil)
