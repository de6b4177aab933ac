package errcodes

import "errors"

var (
	ErrMissingRepository               = errors.New("repository is missing")
	ErrRepositoryMustBeInFormOwnerRepo = errors.New("repository must be in the form of 'owner/repo'")
	ErrMissingTitle                    = errors.New("title is missing")
	ErrMissingHead                     = errors.New("head branch is missing")
	ErrMissingBase                     = errors.New("base branch is missing")
	ErrMissingTagName                  = errors.New("tag name is missing")
)
