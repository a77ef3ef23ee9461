package index

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const (
	PENDING_TRANSFERS_PATH = "/v1/getUnSendTransferFromCCTP"
	INDEX_TIMEOUT          = 10 * time.Second
)

// PendingTransfer is a source transaction the index reports as not yet completed.
type PendingTransfer struct {
	ChainName    string
	SourceDomain uint32
	// DestinationDomain is nil when the index does not report it.
	DestinationDomain *uint32
	// Sequence is the token message nonce, zero when unknown.
	Sequence       uint64
	SourceTxHash   common.Hash
	BlockTimestamp time.Time
}

type PendingIndex struct {
	HTTPClient *http.Client

	url string
}

func NewPendingIndex(url string) *PendingIndex {
	return &PendingIndex{
		HTTPClient: &http.Client{
			Timeout: INDEX_TIMEOUT,
		},
		url: strings.TrimSuffix(url, "/"),
	}
}

// PendingTransfers returns pending transfers towards the destination domain
// ordered by source block time.
func (i *PendingIndex) PendingTransfers(ctx context.Context, destinationDomain uint32) ([]PendingTransfer, error) {
	url := fmt.Sprintf("%s%s?dstDomain=%d", i.url, PENDING_TRANSFERS_PATH, destinationDomain)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := i.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid index response")
	}

	transfers := make([]PendingTransfer, 0)
	for _, r := range gjson.GetBytes(body, "record").Array() {
		t, err := parseRecord(r)
		if err != nil {
			log.Warn().Err(err).Msgf("Skipping index record %s", r.Raw)
			continue
		}
		if t.DestinationDomain != nil && *t.DestinationDomain != destinationDomain {
			continue
		}
		transfers = append(transfers, t)
	}

	sort.SliceStable(transfers, func(a, b int) bool {
		return transfers[a].BlockTimestamp.Before(transfers[b].BlockTimestamp)
	})
	return transfers, nil
}

func parseRecord(r gjson.Result) (PendingTransfer, error) {
	txHash := r.Get("extrinsicHash").String()
	if len(common.FromHex(txHash)) != common.HashLength {
		return PendingTransfer{}, fmt.Errorf("invalid transaction hash %s", txHash)
	}

	source := r.Get("srcDomain")
	if !source.Exists() {
		source = r.Get("srcChainId")
	}
	if !source.Exists() {
		return PendingTransfer{}, fmt.Errorf("source domain missing")
	}

	t := PendingTransfer{
		ChainName:      r.Get("chainName").String(),
		SourceDomain:   uint32(source.Uint()),
		Sequence:       r.Get("sequence").Uint(),
		SourceTxHash:   common.HexToHash(txHash),
		BlockTimestamp: time.Unix(r.Get("blockTimestamp").Int(), 0),
	}
	if dst := r.Get("dstDomain"); dst.Exists() {
		d := uint32(dst.Uint())
		t.DestinationDomain = &d
	}
	return t, nil
}
