package anubis

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/url"
	"slices"
	"strings"

	"github.com/riskibarqy/scouting-board/internal/domain/user"
)

// errAnubisTransient marks failures that count against the circuit breaker.
var errAnubisTransient = errors.New("anubis transient failure")

func isCircuitFailure(err error) bool {
	return errors.Is(err, errAnubisTransient)
}

// hashToken keys the principal cache so raw tokens never sit in memory longer
// than the request.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// parseRoles normalises role claims. Anubis sends "head-scout" and
// "head_scout" interchangeably; duplicates are dropped.
func parseRoles(values []string) []user.Role {
	out := make([]user.Role, 0, len(values))
	for _, v := range values {
		role := user.Role(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), "-", "_"))
		if role == "" || slices.Contains(out, role) {
			continue
		}
		out = append(out, role)
	}
	return out
}

// buildURL joins the introspection path onto the base URL. An absolute path
// wins over the base.
func buildURL(baseURL, path string) string {
	path = strings.TrimSpace(path)
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	baseURL = strings.TrimSpace(baseURL)
	if path == "" {
		return strings.TrimSuffix(baseURL, "/")
	}
	joined, err := url.JoinPath(baseURL, path)
	if err != nil {
		return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
	}
	return joined
}

func clonePrincipal(p user.Principal) user.Principal {
	p.Roles = slices.Clone(p.Roles)
	return p
}
