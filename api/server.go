package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/cctp-relayer/api/handlers"
)

func NewRouter(
	transfersHandler *handlers.TransfersHandler,
	queueHandler *handlers.QueueHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/domains/{domainId:[0-9]+}/transfers/{nonce:[0-9]+}", transfersHandler.HandleRequest).Methods("GET")
	r.HandleFunc("/v1/domains/{domainId:[0-9]+}/queue", queueHandler.HandleRequest).Methods("GET")
	return r
}

func Serve(
	ctx context.Context,
	addr string,
	transfersHandler *handlers.TransfersHandler,
	queueHandler *handlers.QueueHandler,
) {
	server := &http.Server{
		Addr:        addr,
		Handler:     NewRouter(transfersHandler, queueHandler),
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
