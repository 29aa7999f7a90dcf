// Package transport is the TCP harness around a single matching book:
// a listener, a bounded worker pool reading client frames, and the
// dispatch from a wire.Frame to the corresponding engine.Book call.
package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/fenrir-labs/lob/internal/engine"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

const (
	maxRecvSize     = 4 * 1024
	defaultNWorkers = 10
	defaultConnTTL  = 5 * time.Second
)

var ErrImproperConversion = errors.New("improper type conversion")

// Server accepts client connections and matches their order frames
// against a single book.
type Server struct {
	address string
	port    int
	book    *engine.Book

	pool   WorkerPool
	cancel context.CancelFunc

	sessionsLock sync.Mutex
	sessions     map[string]net.Conn
}

// New builds a server for book, listening on address:port.
func New(address string, port int, book *engine.Book) *Server {
	return &Server{
		address:  address,
		port:     port,
		book:     book,
		pool:     NewWorkerPool(defaultNWorkers),
		sessions: make(map[string]net.Conn),
	}
}

// Shutdown cancels the server's run context.
func (s *Server) Shutdown() {
	log.Info().Msg("transport shutting down")
	if s.cancel != nil {
		s.cancel()
	}
}

// Run accepts connections until ctx is cancelled. It blocks.
func (s *Server) Run(ctx context.Context) error {
	defer s.Shutdown()

	ctx, s.cancel = context.WithCancel(ctx)
	t, ctx := tomb.WithContext(ctx)

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", fmt.Sprintf("%s:%d", s.address, s.port))
	if err != nil {
		return fmt.Errorf("unable to start listener: %w", err)
	}
	defer func() {
		if err := listener.Close(); err != nil {
			log.Error().Err(err).Msg("error closing listener")
		}
	}()

	t.Go(func() error {
		s.pool.Setup(t, s.handleConnection)
		return nil
	})

	log.Info().Str("address", listener.Addr().String()).Msg("transport listening")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			conn, err := listener.Accept()
			if err != nil {
				log.Error().Err(err).Msg("error accepting connection")
				continue
			}
			s.addSession(conn)
			s.pool.AddTask(conn)
		}
	}
}

func (s *Server) addSession(conn net.Conn) {
	s.sessionsLock.Lock()
	defer s.sessionsLock.Unlock()
	s.sessions[conn.RemoteAddr().String()] = conn
}

func (s *Server) deleteSession(address string) {
	s.sessionsLock.Lock()
	defer s.sessionsLock.Unlock()
	delete(s.sessions, address)
}

// handleConnection reads one frame off conn, dispatches it against the
// book, writes back a response, and requeues the connection for its
// next frame. Any error returned from here is fatal to the worker.
func (s *Server) handleConnection(t *tomb.Tomb, task any) error {
	conn, ok := task.(net.Conn)
	if !ok {
		return ErrImproperConversion
	}

	addr := conn.RemoteAddr().String()

	if err := conn.SetDeadline(time.Now().Add(defaultConnTTL)); err != nil {
		log.Error().Err(err).Str("address", addr).Msg("failed setting deadline")
		s.deleteSession(addr)
		return nil
	}

	select {
	case <-t.Dying():
		return nil
	default:
	}

	buf := make([]byte, maxRecvSize)
	n, err := conn.Read(buf)
	if err != nil {
		log.Error().Err(err).Str("address", addr).Msg("error reading from connection")
		s.deleteSession(addr)
		return nil
	}

	resp := s.dispatch(buf[:n])
	if _, err := conn.Write(resp.Serialize()); err != nil {
		log.Error().Err(err).Str("address", addr).Msg("error writing response")
		s.deleteSession(addr)
		return nil
	}

	s.pool.AddTask(conn)
	return nil
}
