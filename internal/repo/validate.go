package repo

import (
	"fmt"
	"regexp"
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	sshRe   = regexp.MustCompile(`git@github\.com:([^/]+)/(.+?)(?:\.git)?$`)
	httpsRe = regexp.MustCompile(`https://github\.com/([^/]+)/(.+?)(?:\.git)?$`)
)

// ValidateName checks a repository name against GitHub naming rules.
func ValidateName(name string) error {
	if name == "" || len(name) > 100 {
		return fmt.Errorf("repo name must be between 1 and 100 characters")
	}
	if !nameRe.MatchString(name) {
		return fmt.Errorf("repo name %q contains invalid characters", name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("repo name %q is reserved", name)
	}
	return nil
}

// ParseRemote extracts the owner and repository name from an SSH or HTTPS
// GitHub remote URL.
func ParseRemote(remoteURL string) (owner, name string, ok bool) {
	if match := sshRe.FindStringSubmatch(remoteURL); match != nil {
		return match[1], match[2], true
	}
	if match := httpsRe.FindStringSubmatch(remoteURL); match != nil {
		return match[1], match[2], true
	}
	return "", "", false
}
