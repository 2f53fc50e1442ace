package github

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/go-github/v73/github"
)

var prHTMLURLRegex = regexp.MustCompile(`/([^/]+)/([^/]+)/pull/\d+$`)

// RepoFromIssue extracts the owner and repository name of a search hit.
// Search results do not embed the repository object, only its API URL
// (".../repos/{owner}/{repo}"), so the names are parsed from there. The web
// URL of the pull request is the fallback.
func RepoFromIssue(issue *github.Issue) (owner, name string, err error) {
	if repo := issue.GetRepository(); repo.GetOwner().GetLogin() != "" && repo.GetName() != "" {
		return repo.GetOwner().GetLogin(), repo.GetName(), nil
	}

	if owner, name, ok := parseRepositoryURL(issue.GetRepositoryURL()); ok {
		return owner, name, nil
	}

	if matches := prHTMLURLRegex.FindStringSubmatch(strings.TrimSuffix(issue.GetHTMLURL(), "/")); len(matches) == 3 {
		return matches[1], matches[2], nil
	}

	return "", "", fmt.Errorf("cannot determine repository of issue #%d from %q", issue.GetNumber(), issue.GetRepositoryURL())
}

func parseRepositoryURL(repoURL string) (owner, name string, ok bool) {
	idx := strings.LastIndex(repoURL, "/repos/")
	if idx < 0 {
		return "", "", false
	}
	parts := strings.Split(strings.Trim(repoURL[idx+len("/repos/"):], "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
