package github

import (
	"context"
	"net/http"
	"os"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/tugboatctl/tugboat/pkg/domain/interfaces"
	"github.com/tugboatctl/tugboat/pkg/domain/model"
)

type client struct {
	gh    *github.Client
	owner string
	repo  string
}

// Option is a functional option for client configuration
type Option func(*client) error

// WithBaseURL points the client at a GitHub Enterprise or test endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *client) error {
		gh, err := c.gh.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return goerr.Wrap(err, "failed to set GitHub base URL", goerr.V("url", baseURL))
		}
		c.gh = gh
		return nil
	}
}

// NewClient creates a ReleaseHost backed by the GitHub API for one
// repository. An empty token makes an unauthenticated client, which is
// only useful against public read endpoints and test servers.
func NewClient(token, owner, repo string, opts ...Option) (interfaces.ReleaseHost, error) {
	gh := github.NewClient(nil)
	if token != "" {
		gh = gh.WithAuthToken(token)
	}

	c := &client{gh: gh, owner: owner, repo: repo}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RemoteTagObjectSHA returns the object id the remote tag ref points at,
// or "" when the host has no such tag.
func (c *client) RemoteTagObjectSHA(ctx context.Context, tag string) (string, error) {
	ref, resp, err := c.gh.Git.GetRef(ctx, c.owner, c.repo, "tags/"+tag)
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if err != nil {
		return "", goerr.Wrap(err, "failed to query remote tag ref", goerr.V("tag", tag))
	}
	return ref.GetObject().GetSHA(), nil
}

// GetReleaseByTag returns the hosted release for the tag, or nil when none
// exists.
func (c *client) GetReleaseByTag(ctx context.Context, tag string) (*model.HostedRelease, error) {
	rel, resp, err := c.gh.Repositories.GetReleaseByTag(ctx, c.owner, c.repo, tag)
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query release", goerr.V("tag", tag))
	}
	return toHostedRelease(rel), nil
}

// CreateRelease creates a release record as described by the request.
func (c *client) CreateRelease(ctx context.Context, req *model.ReleaseRequest) (*model.HostedRelease, error) {
	rel, _, err := c.gh.Repositories.CreateRelease(ctx, c.owner, c.repo, &github.RepositoryRelease{
		TagName:    github.Ptr(req.TagName),
		Name:       github.Ptr(req.Name),
		Body:       github.Ptr(req.Body),
		Draft:      github.Ptr(req.Draft),
		Prerelease: github.Ptr(req.Prerelease),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create release", goerr.V("tag", req.TagName))
	}
	return toHostedRelease(rel), nil
}

// UploadAsset attaches the file at path to the release as a named asset.
func (c *client) UploadAsset(ctx context.Context, releaseID int64, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return goerr.Wrap(err, "failed to open asset file", goerr.V("path", path))
	}
	defer f.Close()

	_, _, err = c.gh.Repositories.UploadReleaseAsset(ctx, c.owner, c.repo, releaseID,
		&github.UploadOptions{Name: name}, f)
	if err != nil {
		return goerr.Wrap(err, "failed to upload release asset",
			goerr.V("name", name), goerr.V("release_id", releaseID))
	}
	return nil
}

// PublishRelease transitions a draft record to published.
func (c *client) PublishRelease(ctx context.Context, releaseID int64) error {
	_, _, err := c.gh.Repositories.EditRelease(ctx, c.owner, c.repo, releaseID,
		&github.RepositoryRelease{Draft: github.Ptr(false)})
	if err != nil {
		return goerr.Wrap(err, "failed to publish release", goerr.V("release_id", releaseID))
	}
	return nil
}

// DeleteRelease removes a release record; the underlying tag stays.
func (c *client) DeleteRelease(ctx context.Context, releaseID int64) error {
	if _, err := c.gh.Repositories.DeleteRelease(ctx, c.owner, c.repo, releaseID); err != nil {
		return goerr.Wrap(err, "failed to delete release", goerr.V("release_id", releaseID))
	}
	return nil
}

func toHostedRelease(rel *github.RepositoryRelease) *model.HostedRelease {
	return &model.HostedRelease{
		ID:         rel.GetID(),
		TagName:    rel.GetTagName(),
		Name:       rel.GetName(),
		Body:       rel.GetBody(),
		Draft:      rel.GetDraft(),
		Prerelease: rel.GetPrerelease(),
		HTMLURL:    rel.GetHTMLURL(),
	}
}
