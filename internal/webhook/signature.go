package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignatureHeader is the request header carrying the payment webhook signature
const SignatureHeader = "Payment-Signature"

var (
	// ErrMalformedSignature is returned when the signature header cannot be parsed
	ErrMalformedSignature = errors.New("malformed signature header")
	// ErrSignatureMismatch is returned when no v1 signature matches the payload
	ErrSignatureMismatch = errors.New("signature mismatch")
	// ErrTimestampOutOfTolerance is returned when the signed timestamp is too far from now
	ErrTimestampOutOfTolerance = errors.New("signature timestamp outside tolerance")
)

// Sign computes the signature header value for a payload
// Format: "t=<unix>,v1=<hex hmac-sha256 of "<unix>.<body>">"
func Sign(secret string, timestamp time.Time, payload []byte) string {
	ts := timestamp.Unix()
	return fmt.Sprintf("t=%d,v1=%s", ts, computeSignature(secret, ts, payload))
}

// Verify checks the signature header against the payload.
// The header may carry several v1 entries during secret rotation; any match is accepted.
// A non-positive tolerance disables the timestamp check.
func Verify(header string, payload []byte, secret string, tolerance time.Duration, now time.Time) error {
	ts, signatures, err := parseHeader(header)
	if err != nil {
		return err
	}

	if tolerance > 0 {
		signedAt := time.Unix(ts, 0)
		if now.Sub(signedAt) > tolerance || signedAt.Sub(now) > tolerance {
			return ErrTimestampOutOfTolerance
		}
	}

	expected, _ := hex.DecodeString(computeSignature(secret, ts, payload))
	for _, sig := range signatures {
		if hmac.Equal(expected, sig) {
			return nil
		}
	}

	return ErrSignatureMismatch
}

func parseHeader(header string) (int64, [][]byte, error) {
	var (
		ts         int64
		hasTS      bool
		signatures [][]byte
	)

	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return 0, nil, ErrMalformedSignature
		}

		switch key {
		case "t":
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: invalid timestamp", ErrMalformedSignature)
			}
			ts = parsed
			hasTS = true
		case "v1":
			sig, err := hex.DecodeString(value)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: invalid v1 signature", ErrMalformedSignature)
			}
			signatures = append(signatures, sig)
		}
	}

	if !hasTS || len(signatures) == 0 {
		return 0, nil, ErrMalformedSignature
	}

	return ts, signatures, nil
}

func computeSignature(secret string, ts int64, payload []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(strconv.FormatInt(ts, 10)))
	h.Write([]byte("."))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
