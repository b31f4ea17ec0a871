package repo

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	valid := []string{"dotfiles", "my-repo", "my_repo", "repo.v2", "a", strings.Repeat("x", 100)}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "has space", "semi;colon", "slash/name", "é", ".", "..", strings.Repeat("x", 101)}
	for _, name := range invalid {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) = nil, want error", name)
		}
	}
}

func TestParseRemote(t *testing.T) {
	cases := []struct {
		url         string
		owner, name string
		ok          bool
	}{
		{"git@github.com:alice/dotfiles.git", "alice", "dotfiles", true},
		{"git@github.com:alice/dotfiles", "alice", "dotfiles", true},
		{"https://github.com/alice/dotfiles.git", "alice", "dotfiles", true},
		{"https://github.com/alice/dotfiles", "alice", "dotfiles", true},
		{"https://gitlab.com/alice/dotfiles.git", "", "", false},
		{"not a url", "", "", false},
	}
	for _, tc := range cases {
		owner, name, ok := ParseRemote(tc.url)
		if owner != tc.owner || name != tc.name || ok != tc.ok {
			t.Errorf("ParseRemote(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tc.url, owner, name, ok, tc.owner, tc.name, tc.ok)
		}
	}
}

func TestRemoteURL(t *testing.T) {
	if got := RemoteURL("alice", "dotfiles"); got != "git@github.com:alice/dotfiles.git" {
		t.Errorf("RemoteURL = %q", got)
	}
}
