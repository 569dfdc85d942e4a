package middleware

import (
	"encoding/base64"
	"strings"
)

const basicScheme = "basic"

// Credentials is an identifier/secret pair taken from a Basic Authorization header.
type Credentials struct {
	Email    string
	Password string
}

// BasicCredentials decodes an "Authorization: Basic <base64(email:password)>"
// header value. Missing or malformed input of any kind reports false; callers
// cannot and need not tell the two apart.
func BasicCredentials(header string) (Credentials, bool) {
	scheme, payload, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, basicScheme) {
		return Credentials{}, false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return Credentials{}, false
	}

	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return Credentials{}, false
	}
	return Credentials{Email: email, Password: password}, true
}
