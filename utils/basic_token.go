package utils

import (
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
)

const basicScheme = "Basic"

var ErrMalformedToken = errors.New("malformed basic token")

// EncodeBasicToken builds the value clients send in the Authorization header.
// It is an encoding, not a hash: the same pair always yields the same token.
func EncodeBasicToken(login, password string) string {
	raw := login + ":" + password
	return basicScheme + " " + base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeBasicToken reverses EncodeBasicToken. The scheme name is matched
// case-insensitively and the pair is split on the first colon.
func DecodeBasicToken(token string) (login, password string, err error) {
	token = strings.TrimSpace(token)
	if len(token) <= len(basicScheme) || !strings.EqualFold(token[:len(basicScheme)], basicScheme) || token[len(basicScheme)] != ' ' {
		return "", "", ErrMalformedToken
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(token[len(basicScheme)+1:]))
	if err != nil {
		return "", "", errors.Wrap(ErrMalformedToken, err.Error())
	}

	login, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return "", "", ErrMalformedToken
	}
	return login, password, nil
}
