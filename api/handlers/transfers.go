package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sprintertech/cctp-relayer/chains/evm/message"
	"github.com/sprintertech/cctp-relayer/ledger"
)

type LedgerReader interface {
	Entry(key message.Key) (*ledger.Entry, error)
}

type TransfersHandler struct {
	ledger LedgerReader
}

func NewTransfersHandler(ledger LedgerReader) *TransfersHandler {
	return &TransfersHandler{
		ledger: ledger,
	}
}

// HandleRequest returns the ledger entry of the transfer identified by its
// source domain and nonce
func (h *TransfersHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	domain, err := strconv.ParseUint(vars["domainId"], 10, 32)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid domainId"), http.StatusBadRequest)
		return
	}
	nonce, err := strconv.ParseUint(vars["nonce"], 10, 64)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid nonce"), http.StatusBadRequest)
		return
	}

	key := message.Key{SourceDomain: uint32(domain), Nonce: nonce}
	entry, err := h.ledger.Entry(key)
	if err != nil {
		JSONError(w, fmt.Errorf("failed reading ledger: %w", err), http.StatusInternalServerError)
		return
	}
	if entry == nil {
		JSONError(w, fmt.Errorf("transfer %s not found", key), http.StatusNotFound)
		return
	}

	writeJSON(w, entry)
}
