package githubclient

import (
	"fmt"
	"strings"
)

// ParseOwnerRepo extracts the owner and repository name from the clone URL
// shapes GitHub hands out.
func ParseOwnerRepo(repoURL string) (string, string, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(repoURL), ".git")

	var path string
	switch {
	case strings.HasPrefix(trimmed, "git@github.com:"):
		path = strings.TrimPrefix(trimmed, "git@github.com:")
	case strings.HasPrefix(trimmed, "ssh://git@github.com/"):
		path = strings.TrimPrefix(trimmed, "ssh://git@github.com/")
	case strings.HasPrefix(trimmed, "https://github.com/"):
		path = strings.TrimPrefix(trimmed, "https://github.com/")
	case strings.HasPrefix(trimmed, "http://github.com/"):
		path = strings.TrimPrefix(trimmed, "http://github.com/")
	case strings.HasPrefix(trimmed, "git://github.com/"):
		path = strings.TrimPrefix(trimmed, "git://github.com/")
	default:
		return "", "", fmt.Errorf("not a github repository url: %s", repoURL)
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed github repository url: %s", repoURL)
	}

	return parts[0], parts[1], nil
}
