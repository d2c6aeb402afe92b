// Package git provides the version-control integration for chlog. It
// uses the go-git library to create release tags without requiring a
// git CLI installation. Tagging failures are reported by the caller as
// warnings; a failed tag never reverses a release.
package git

import (
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// openRepo opens the repository containing root, traversing up the
// directory tree to find the repository root.
func openRepo(root string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", root, err)
	}
	return repo, nil
}

// CreateTag creates an annotated tag named name pointing at HEAD.
// The tagger identity comes from the repository configuration, falling
// back to a tool identity when none is configured.
func CreateTag(root, name, message string) error {
	repo, err := openRepo(root)
	if err != nil {
		return err
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD: %w", err)
	}

	_, err = repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{
		Tagger:  tagger(repo),
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("creating tag %q: %w", name, err)
	}
	return nil
}

// tagger resolves the signature for annotated tags.
func tagger(repo *git.Repository) *object.Signature {
	sig := &object.Signature{Name: "chlog", When: time.Now()}
	if cfg, err := repo.ConfigScoped(gitconfig.GlobalScope); err == nil && cfg.User.Name != "" {
		sig.Name = cfg.User.Name
		sig.Email = cfg.User.Email
	}
	return sig
}
