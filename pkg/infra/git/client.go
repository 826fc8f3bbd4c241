package git

import (
	"context"
	"errors"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/m-mizutani/goerr/v2"

	"github.com/tugboatctl/tugboat/pkg/domain/interfaces"
	"github.com/tugboatctl/tugboat/pkg/domain/model"
)

type client struct {
	repoPath string
}

// NewClient creates a GitClient over the repository checkout at repoPath.
func NewClient(repoPath string) interfaces.GitClient {
	return &client{repoPath: repoPath}
}

// TagsPointingAtHead lists the tags whose target commit is HEAD. Annotated
// tags are peeled so the commit id and the tag object id are reported
// separately.
func (c *client) TagsPointingAtHead(ctx context.Context) ([]model.TagRef, error) {
	repo, err := gogit.PlainOpen(c.repoPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open repository", goerr.V("path", c.repoPath))
	}

	head, err := repo.Head()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve HEAD")
	}
	headCommit := head.Hash().String()

	iter, err := repo.Tags()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tags")
	}

	var tags []model.TagRef
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		tag, err := c.peelTag(repo, ref)
		if err != nil {
			return err
		}
		if tag.CommitID == headCommit {
			tags = append(tags, tag)
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to inspect tags")
	}

	return tags, nil
}

// ResolveTag resolves a tag name to its commit id and tag object id.
func (c *client) ResolveTag(ctx context.Context, name string) (model.TagRef, error) {
	repo, err := gogit.PlainOpen(c.repoPath)
	if err != nil {
		return model.TagRef{}, goerr.Wrap(err, "failed to open repository", goerr.V("path", c.repoPath))
	}

	ref, err := repo.Reference(plumbing.NewTagReferenceName(name), true)
	if err != nil {
		return model.TagRef{}, goerr.Wrap(err, "failed to resolve tag", goerr.V("tag", name))
	}

	return c.peelTag(repo, ref)
}

// peelTag resolves a tag ref to both hashes. For annotated tags the ref
// hash is the tag object and its target is the commit; lightweight tags
// point at the commit directly.
func (c *client) peelTag(repo *gogit.Repository, ref *plumbing.Reference) (model.TagRef, error) {
	name := ref.Name().Short()

	tagObj, err := repo.TagObject(ref.Hash())
	switch {
	case err == nil:
		return model.TagRef{
			Name:        name,
			CommitID:    tagObj.Target.String(),
			TagObjectID: ref.Hash().String(),
		}, nil
	case errors.Is(err, plumbing.ErrObjectNotFound):
		return model.TagRef{
			Name:        name,
			CommitID:    ref.Hash().String(),
			TagObjectID: ref.Hash().String(),
		}, nil
	default:
		return model.TagRef{}, goerr.Wrap(err, "failed to read tag object", goerr.V("tag", name))
	}
}

// CloneTag creates an isolated checkout of the repository at exactly the
// given tag. The clone follows only the tag ref, so the checkout reflects
// that tag's tree rather than arbitrary branch history.
func (c *client) CloneTag(ctx context.Context, tag, destDir string) error {
	_, err := gogit.PlainCloneContext(ctx, destDir, false, &gogit.CloneOptions{
		URL:           c.repoPath,
		ReferenceName: plumbing.NewTagReferenceName(tag),
		SingleBranch:  true,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to clone tag",
			goerr.V("tag", tag), goerr.V("dest", destDir))
	}
	return nil
}
