// Package token inspects JWT-style compact tokens without verifying them.
package token

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/AdenMGB/devtoolbox/internal/model"
	"github.com/golang-jwt/jwt/v4"
	"github.com/maxbolgarin/errm"
)

// Decode splits a compact token into header and payload JSON and
// evaluates its exp claim against the current time.
// The signature segment is left untouched: this is inspection only and
// says nothing about whether the token is authentic.
func Decode(raw string) (*model.DecodedToken, error) {
	return DecodeAt(raw, time.Now())
}

// DecodeAt decodes like Decode against an explicit reference time
func DecodeAt(raw string, now time.Time) (*model.DecodedToken, error) {
	raw = strings.TrimSpace(raw)

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, errm.Wrap(model.ErrInvalidFormat, "token must have three dot-separated segments")
	}
	for i, part := range parts {
		if part == "" {
			return nil, errm.Wrap(model.ErrInvalidFormat, "token segment is empty")
		}
		// base64url padding is optional for the emitter, the parser
		// only takes unpadded segments
		parts[i] = strings.TrimRight(part, "=")
	}

	claims := jwt.MapClaims{}
	parsed, _, err := jwt.NewParser().ParseUnverified(strings.Join(parts, "."), claims)
	if err != nil {
		return nil, errm.Wrap(model.ErrDecodeFailure, "failed to decode token segments")
	}

	return &model.DecodedToken{
		Header:  parsed.Header,
		Payload: claims,
		Expiry:  evaluateExpiry(claims, now),
	}, nil
}

// evaluateExpiry reads a numeric exp claim in whole seconds.
// A missing or non-numeric claim yields the unknown state.
func evaluateExpiry(claims jwt.MapClaims, now time.Time) model.Expiry {
	value, ok := claims["exp"]
	if !ok {
		return model.Expiry{State: model.ExpiryUnknown}
	}

	var exp int64
	switch v := value.(type) {
	case float64:
		exp = int64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return model.Expiry{State: model.ExpiryUnknown}
		}
		exp = int64(f)
	default:
		return model.Expiry{State: model.ExpiryUnknown}
	}

	nowSec := now.Unix()
	if exp < nowSec {
		return model.Expiry{State: model.ExpiryExpired, Seconds: nowSec - exp}
	}
	return model.Expiry{State: model.ExpiryValid, Seconds: exp - nowSec}
}
