package circle_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/cctp-relayer/protocol/circle"
)

const (
	completeHash = "0x1111111111111111111111111111111111111111111111111111111111111111"
	pendingHash  = "0x2222222222222222222222222222222222222222222222222222222222222222"
	unknownHash  = "0x3333333333333333333333333333333333333333333333333333333333333333"
	flakyHash    = "0x4444444444444444444444444444444444444444444444444444444444444444"
	brokenHash   = "0x5555555555555555555555555555555555555555555555555555555555555555"
	barehexHash  = "0x6666666666666666666666666666666666666666666666666666666666666666"
	badhexHash   = "0x7777777777777777777777777777777777777777777777777777777777777777"
	confirmHash  = "0x8888888888888888888888888888888888888888888888888888888888888888"
)

type AttestationAPITestSuite struct {
	suite.Suite

	api        *circle.AttestationAPI
	testServer *httptest.Server
	flakyCalls atomic.Int32
}

func TestRunAttestationAPITestSuite(t *testing.T) {
	suite.Run(t, new(AttestationAPITestSuite))
}

func (s *AttestationAPITestSuite) SetupTest() {
	s.flakyCalls.Store(0)
	s.testServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hash := strings.TrimPrefix(r.URL.Path, "/v1/attestations/")
		switch hash {
		case completeHash:
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"attestation":"0xdeadbeef","status":"complete"}`))
		case pendingHash:
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"attestation":"PENDING","status":"pending_confirmations"}`))
		case flakyHash:
			if s.flakyCalls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"attestation":"0x01","status":"complete"}`))
		case brokenHash:
			w.WriteHeader(http.StatusInternalServerError)
		case barehexHash:
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"attestation":"0xdeadbeef"}`))
		case badhexHash:
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"attestation":"0xzz12","status":"complete"}`))
		case confirmHash:
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"attestation":"0xdeadbeef","status":"pending_confirmations"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Message hash not found"}`))
		}
	}))

	s.api = circle.NewAttestationAPI(s.testServer.URL, 0, time.Millisecond)
}

func (s *AttestationAPITestSuite) TearDownTest() {
	s.testServer.Close()
}

func (s *AttestationAPITestSuite) Test_FetchAttestation_InvalidHash() {
	_, err := s.api.FetchAttestation(context.Background(), "0x1234")

	s.True(errors.Is(err, circle.ErrInvalidHash))
}

func (s *AttestationAPITestSuite) Test_FetchAttestation_Complete() {
	result, err := s.api.FetchAttestation(context.Background(), completeHash)

	s.Nil(err)
	s.Equal(circle.AttestationComplete, result.Status)
	s.Equal([]byte{0xde, 0xad, 0xbe, 0xef}, result.Attestation)
}

func (s *AttestationAPITestSuite) Test_FetchAttestation_UpperCaseHashNormalized() {
	result, err := s.api.FetchAttestation(context.Background(), "0x"+strings.ToUpper(completeHash[2:]))

	s.Nil(err)
	s.Equal(circle.AttestationComplete, result.Status)
}

func (s *AttestationAPITestSuite) Test_FetchAttestation_Pending() {
	result, err := s.api.FetchAttestation(context.Background(), pendingHash)

	s.Nil(err)
	s.Equal(circle.AttestationNotReady, result.Status)
	s.Nil(result.Attestation)
}

func (s *AttestationAPITestSuite) Test_FetchAttestation_UnknownHash() {
	result, err := s.api.FetchAttestation(context.Background(), unknownHash)

	s.Nil(err)
	s.Equal(circle.AttestationNotReady, result.Status)
}

func (s *AttestationAPITestSuite) Test_FetchAttestation_RetriesTransientFailures() {
	result, err := s.api.FetchAttestation(context.Background(), flakyHash)

	s.Nil(err)
	s.Equal(circle.AttestationComplete, result.Status)
	s.Equal(int32(3), s.flakyCalls.Load())
}

func (s *AttestationAPITestSuite) Test_FetchAttestation_Unavailable() {
	_, err := s.api.FetchAttestation(context.Background(), brokenHash)

	s.True(errors.Is(err, circle.ErrAttestationUnavailable))
}

func (s *AttestationAPITestSuite) Test_FetchAttestation_CompleteWithoutStatus() {
	result, err := s.api.FetchAttestation(context.Background(), barehexHash)

	s.Nil(err)
	s.Equal(circle.AttestationComplete, result.Status)
	s.Equal([]byte{0xde, 0xad, 0xbe, 0xef}, result.Attestation)
}

func (s *AttestationAPITestSuite) Test_FetchAttestation_MalformedHex() {
	result, err := s.api.FetchAttestation(context.Background(), badhexHash)

	s.Nil(err)
	s.Equal(circle.AttestationNotReady, result.Status)
	s.Nil(result.Attestation)
}

func (s *AttestationAPITestSuite) Test_FetchAttestation_PendingConfirmations() {
	result, err := s.api.FetchAttestation(context.Background(), confirmHash)

	s.Nil(err)
	s.Equal(circle.AttestationNotReady, result.Status)
}
