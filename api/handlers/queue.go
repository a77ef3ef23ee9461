package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sprintertech/cctp-relayer/relay"
)

type QueueReader interface {
	Len() int
}

type PollerReader interface {
	State() relay.PollerState
}

// DestinationStatus exposes the runtime state of one destination domain.
type DestinationStatus struct {
	Queue  QueueReader
	Poller PollerReader
}

type QueueResponse struct {
	Domain      uint32 `json:"domain"`
	Depth       int    `json:"depth"`
	PollerState string `json:"pollerState"`
}

type QueueHandler struct {
	destinations map[uint32]DestinationStatus
}

func NewQueueHandler(destinations map[uint32]DestinationStatus) *QueueHandler {
	return &QueueHandler{
		destinations: destinations,
	}
}

// HandleRequest returns queue depth and poller state of the destination domain
func (h *QueueHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	domain, err := strconv.ParseUint(vars["domainId"], 10, 32)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid domainId"), http.StatusBadRequest)
		return
	}

	status, ok := h.destinations[uint32(domain)]
	if !ok {
		JSONError(w, fmt.Errorf("domain %d not relayed", domain), http.StatusNotFound)
		return
	}

	writeJSON(w, QueueResponse{
		Domain:      uint32(domain),
		Depth:       status.Queue.Len(),
		PollerState: string(status.Poller.State()),
	})
}
