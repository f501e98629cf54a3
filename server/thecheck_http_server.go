package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type TheCheckHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	port      int
}

func NewTheCheckHttpServer(router *Router, muxRouter *mux.Router, port int) *TheCheckHttpServer {
	return &TheCheckHttpServer{
		router:    router,
		muxRouter: muxRouter,
		port:      port,
	}
}

// Start serves HTTP until an interrupt or termination signal arrives,
// then shuts down gracefully.
func (s *TheCheckHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[TheCheckHttpServer] Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-stop
	log.Println("[TheCheckHttpServer] Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[TheCheckHttpServer] Server exiting")
}
