package gitutils

import (
	"os"
	"regexp"

	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"
)

var (
	ErrCannotGetLocalRepository         = errors.New("cannot get local repository")
	ErrUnableToParseRemoteRepositoryURI = errors.New("unable to parse remote repository URI")
	ErrNoRemoteFound                    = errors.New("no remote found in local repository")
)

// Repo identifies a hosted repository by its full name components.
type Repo struct {
	Owner string
	Name  string
}

func (r *Repo) FullName() string {
	return r.Owner + "/" + r.Name
}

var remotePatterns = []*regexp.Regexp{
	// git@host:owner/name.git
	regexp.MustCompile(`^git@[^:]+:([^/]+)/(.+?)(?:\.git)?$`),
	// https://host/owner/name(.git)
	regexp.MustCompile(`^https?://[^/]+/([^/]+)/(.+?)(?:\.git)?$`),
}

func parseRemoteURL(url string) (*Repo, error) {
	for _, p := range remotePatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return &Repo{Owner: m[1], Name: m[2]}, nil
		}
	}

	return nil, errors.Wrap(ErrUnableToParseRemoteRepositoryURI, url)
}

var openLocalRepo = func() (*git.Repository, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, ErrCannotGetLocalRepository.Error())
	}

	r, err := git.PlainOpenWithOptions(wd, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, ErrCannotGetLocalRepository.Error())
	}

	return r, nil
}

// GetRemoteInfo derives the hosted repository from the working tree's
// remotes, preferring "origin".
func GetRemoteInfo() (*Repo, error) {
	r, err := openLocalRepo()
	if err != nil {
		return nil, err
	}

	remotes, err := r.Remotes()
	if err != nil {
		return nil, err
	}
	if len(remotes) == 0 {
		return nil, ErrNoRemoteFound
	}

	chosen := remotes[0]
	for _, remote := range remotes {
		if remote.Config().Name == "origin" {
			chosen = remote
			break
		}
	}

	urls := chosen.Config().URLs
	if len(urls) == 0 {
		return nil, ErrNoRemoteFound
	}

	return parseRemoteURL(urls[0])
}

// GetCurrentBranch returns the short name of the checked out branch.
func GetCurrentBranch() (string, error) {
	r, err := openLocalRepo()
	if err != nil {
		return "", err
	}

	head, err := r.Head()
	if err != nil {
		return "", errors.Wrap(err, ErrCannotGetLocalRepository.Error())
	}

	return head.Name().Short(), nil
}
