package anubis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/scouting-board/internal/domain/user"
)

func TestParseRoles(t *testing.T) {
	got := parseRoles([]string{" Head-Scout ", "head_scout", "", "VIEWER"})
	require.Equal(t, []user.Role{user.RoleHeadScout, user.RoleViewer}, got)
}

func TestBuildURL(t *testing.T) {
	cases := []struct {
		base, path, want string
	}{
		{base: "https://anubis.example.com/", path: "/v1/oauth/introspect", want: "https://anubis.example.com/v1/oauth/introspect"},
		{base: "https://anubis.example.com", path: "v1/oauth/introspect", want: "https://anubis.example.com/v1/oauth/introspect"},
		{base: "https://anubis.example.com/", path: "", want: "https://anubis.example.com"},
		{base: "https://ignored.example.com", path: "https://auth.example.com/introspect", want: "https://auth.example.com/introspect"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, buildURL(tc.base, tc.path), "base=%s path=%s", tc.base, tc.path)
	}
}

func TestClonePrincipal_DetachesRoles(t *testing.T) {
	original := user.Principal{UserID: "u1", Roles: []user.Role{user.RoleScout}}
	cloned := clonePrincipal(original)
	cloned.Roles[0] = user.RoleAdmin
	require.Equal(t, user.RoleScout, original.Roles[0])
}
