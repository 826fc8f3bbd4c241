package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/tugboatctl/tugboat/pkg/domain/model"
	"github.com/tugboatctl/tugboat/pkg/domain/types"
	"github.com/tugboatctl/tugboat/pkg/usecase"
)

func testText() usecase.ReleaseText {
	return usecase.ReleaseText{
		DisplayName: "Tugboat",
		Description: "See the changelog for details.",
	}
}

// draftFixture prepares a resolved tag with an existing build directory.
func draftFixture(t *testing.T, tag string) (string, *mockGit) {
	t.Helper()
	root := t.TempDir()
	gt.NoError(t, os.MkdirAll(filepath.Join(root, tag), 0755))
	git := tagsAt(model.TagRef{Name: tag, CommitID: "c1", TagObjectID: "t1"})
	return root, git
}

func TestDraft_Success(t *testing.T) {
	root, git := draftFixture(t, "v3.0.0")
	host := &mockHost{
		remoteTagFunc: func(ctx context.Context, tag string) (string, error) {
			return "t1", nil
		},
	}

	uc := usecase.NewDraft(usecase.NewResolver(git, root), host, testProject(), testText())
	rel, err := uc.Run(context.Background())
	gt.NoError(t, err)
	gt.Value(t, rel.Tag).Equal("v3.0.0")

	gt.Array(t, host.createCalls).Length(1)
	req := host.createCalls[0]
	gt.Value(t, req.TagName).Equal("v3.0.0")
	gt.Value(t, req.Name).Equal("Tugboat 3.0.0")
	gt.True(t, req.Draft)
	gt.False(t, req.Prerelease)

	gt.Array(t, host.uploadCalls).Length(3)
	gt.Value(t, host.uploadCalls[0].Name).Equal("tugboat")
	gt.Value(t, host.uploadCalls[1].Name).Equal("daemonset.yaml")
	gt.Value(t, host.uploadCalls[2].Name).Equal("deployment.yaml")
}

func TestDraft_PrereleaseFlag(t *testing.T) {
	root, git := draftFixture(t, "v3.0.0-rc1")
	host := &mockHost{
		remoteTagFunc: func(ctx context.Context, tag string) (string, error) {
			return "t1", nil
		},
	}

	uc := usecase.NewDraft(usecase.NewResolver(git, root), host, testProject(), testText())
	_, err := uc.Run(context.Background())
	gt.NoError(t, err)

	gt.Array(t, host.createCalls).Length(1)
	gt.True(t, host.createCalls[0].Prerelease)
	gt.Value(t, host.createCalls[0].Name).Equal("Tugboat v3.0.0-rc1")
}

func TestDraft_TagNotPushed(t *testing.T) {
	root, git := draftFixture(t, "v3.0.0")
	host := &mockHost{
		remoteTagFunc: func(ctx context.Context, tag string) (string, error) {
			return "", nil // tag absent on remote
		},
	}

	uc := usecase.NewDraft(usecase.NewResolver(git, root), host, testProject(), testText())
	_, err := uc.Run(context.Background())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrTagNotPushed))
	gt.Array(t, host.createCalls).Length(0)
}

func TestDraft_TagObjectDiffers(t *testing.T) {
	root, git := draftFixture(t, "v3.0.0")
	host := &mockHost{
		remoteTagFunc: func(ctx context.Context, tag string) (string, error) {
			return "other-object", nil
		},
	}

	uc := usecase.NewDraft(usecase.NewResolver(git, root), host, testProject(), testText())
	_, err := uc.Run(context.Background())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrTagNotPushed))
}

func TestDraft_ReleaseAlreadyExists(t *testing.T) {
	root, git := draftFixture(t, "v3.0.0")
	host := &mockHost{
		remoteTagFunc: func(ctx context.Context, tag string) (string, error) {
			return "t1", nil
		},
		getReleaseFunc: func(ctx context.Context, tag string) (*model.HostedRelease, error) {
			return &model.HostedRelease{ID: 7, TagName: tag}, nil
		},
	}

	uc := usecase.NewDraft(usecase.NewResolver(git, root), host, testProject(), testText())
	_, err := uc.Run(context.Background())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrReleaseAlreadyExists))
	gt.Array(t, host.createCalls).Length(0)
	gt.Array(t, host.uploadCalls).Length(0)
}

func TestDraft_MissingBuildDirectory(t *testing.T) {
	root := t.TempDir() // no build directory created
	git := tagsAt(model.TagRef{Name: "v3.0.0", CommitID: "c1", TagObjectID: "t1"})
	host := &mockHost{}

	uc := usecase.NewDraft(usecase.NewResolver(git, root), host, testProject(), testText())
	_, err := uc.Run(context.Background())
	gt.Error(t, err)
	gt.Array(t, host.createCalls).Length(0)
}
