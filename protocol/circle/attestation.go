package circle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	MAINNET_ATTESTATION_URL = "https://iris-api.circle.com"
	TESTNET_ATTESTATION_URL = "https://iris-api-sandbox.circle.com"

	ATTESTATION_RETRIES    = 3
	ATTESTATION_RETRY_WAIT = 2 * time.Second
	ATTESTATION_TIMEOUT    = 10 * time.Second

	STATUS_COMPLETE = "complete"
	PENDING         = "PENDING"
)

var (
	ErrAttestationUnavailable = errors.New("attestation service unavailable")
	ErrInvalidHash            = errors.New("invalid message hash")

	hashRegexp = regexp.MustCompile("^0x[0-9a-f]{64}$")
)

type AttestationStatus int

const (
	AttestationNotReady AttestationStatus = iota
	AttestationComplete
)

func (s AttestationStatus) String() string {
	if s == AttestationComplete {
		return "complete"
	}
	return "not-ready"
}

type AttestationResult struct {
	Status      AttestationStatus
	Attestation []byte
}

type attestationResponse struct {
	Attestation string `json:"attestation"`
	Status      string `json:"status"`
}

type AttestationAPI struct {
	HTTPClient *http.Client

	url     string
	limiter *rate.Limiter
}

// NewAttestationAPI creates a rate limited attestation client that retries
// transient failures with exponential backoff. A non positive rps disables
// rate limiting.
func NewAttestationAPI(url string, rps float64, retryWait time.Duration) *AttestationAPI {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = ATTESTATION_RETRIES
	retryClient.RetryWaitMin = retryWait
	retryClient.RetryWaitMax = retryWait * 8
	retryClient.CheckRetry = AttestationCheckRetry
	retryClient.HTTPClient.Timeout = ATTESTATION_TIMEOUT
	retryClient.Logger = nil

	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &AttestationAPI{
		HTTPClient: retryClient.StandardClient(),
		url:        strings.TrimSuffix(url, "/"),
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// AttestationCheckRetry retries connection failures, rate limiting and server errors.
// Unknown hashes return 404 and are not retried.
func AttestationCheckRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// FetchAttestation queries the attestation status of a single message hash.
// Unknown, pending and malformed attestations are reported as not ready. The
// status field is optional and only ever delays a hex attestation.
func (a *AttestationAPI) FetchAttestation(ctx context.Context, messageHash string) (AttestationResult, error) {
	messageHash = strings.ToLower(messageHash)
	if !hashRegexp.MatchString(messageHash) {
		return AttestationResult{}, fmt.Errorf("%w: %s", ErrInvalidHash, messageHash)
	}

	err := a.limiter.Wait(ctx)
	if err != nil {
		return AttestationResult{}, err
	}

	url := fmt.Sprintf("%s/v1/attestations/%s", a.url, messageHash)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return AttestationResult{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return AttestationResult{}, fmt.Errorf("%w: %s", ErrAttestationUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return AttestationResult{Status: AttestationNotReady}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return AttestationResult{}, fmt.Errorf("%w: unexpected status code: %d, %s", ErrAttestationUnavailable, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return AttestationResult{}, fmt.Errorf("%w: failed to read response body: %s", ErrAttestationUnavailable, err)
	}

	r := new(attestationResponse)
	if err := json.Unmarshal(body, r); err != nil {
		return AttestationResult{}, fmt.Errorf("%w: %s", ErrAttestationUnavailable, err)
	}

	if r.Attestation == "" || r.Attestation == PENDING {
		return AttestationResult{Status: AttestationNotReady}, nil
	}
	if r.Status != "" && r.Status != STATUS_COMPLETE {
		return AttestationResult{Status: AttestationNotReady}, nil
	}

	attestation, err := hexutil.Decode(r.Attestation)
	if err != nil || len(attestation) == 0 {
		log.Debug().Str("messageHash", messageHash).Msgf("Attestation %q is not hex encoded yet", r.Attestation)
		return AttestationResult{Status: AttestationNotReady}, nil
	}
	return AttestationResult{
		Status:      AttestationComplete,
		Attestation: attestation,
	}, nil
}
