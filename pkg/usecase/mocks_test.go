package usecase_test

import (
	"context"
	"errors"

	"github.com/tugboatctl/tugboat/pkg/domain/model"
)

// mockGit is a hand-rolled GitClient for tests.
type mockGit struct {
	tagsAtHeadFunc func(ctx context.Context) ([]model.TagRef, error)
	resolveTagFunc func(ctx context.Context, name string) (model.TagRef, error)
	cloneTagFunc   func(ctx context.Context, tag, destDir string) error

	cloneCalls []string
}

func (m *mockGit) TagsPointingAtHead(ctx context.Context) ([]model.TagRef, error) {
	if m.tagsAtHeadFunc != nil {
		return m.tagsAtHeadFunc(ctx)
	}
	return nil, errors.New("mock not configured")
}

func (m *mockGit) ResolveTag(ctx context.Context, name string) (model.TagRef, error) {
	if m.resolveTagFunc != nil {
		return m.resolveTagFunc(ctx, name)
	}
	return model.TagRef{}, errors.New("mock not configured")
}

func (m *mockGit) CloneTag(ctx context.Context, tag, destDir string) error {
	m.cloneCalls = append(m.cloneCalls, destDir)
	if m.cloneTagFunc != nil {
		return m.cloneTagFunc(ctx, tag, destDir)
	}
	return errors.New("mock not configured")
}

type uploadCall struct {
	ReleaseID int64
	Name      string
	Path      string
}

// mockHost is a hand-rolled ReleaseHost for tests.
type mockHost struct {
	remoteTagFunc     func(ctx context.Context, tag string) (string, error)
	getReleaseFunc    func(ctx context.Context, tag string) (*model.HostedRelease, error)
	createReleaseFunc func(ctx context.Context, req *model.ReleaseRequest) (*model.HostedRelease, error)
	uploadAssetFunc   func(ctx context.Context, releaseID int64, name, path string) error
	publishFunc       func(ctx context.Context, releaseID int64) error
	deleteFunc        func(ctx context.Context, releaseID int64) error

	createCalls  []*model.ReleaseRequest
	uploadCalls  []uploadCall
	publishCalls []int64
	deleteCalls  []int64
}

func (m *mockHost) RemoteTagObjectSHA(ctx context.Context, tag string) (string, error) {
	if m.remoteTagFunc != nil {
		return m.remoteTagFunc(ctx, tag)
	}
	return "", errors.New("mock not configured")
}

func (m *mockHost) GetReleaseByTag(ctx context.Context, tag string) (*model.HostedRelease, error) {
	if m.getReleaseFunc != nil {
		return m.getReleaseFunc(ctx, tag)
	}
	return nil, nil
}

func (m *mockHost) CreateRelease(ctx context.Context, req *model.ReleaseRequest) (*model.HostedRelease, error) {
	m.createCalls = append(m.createCalls, req)
	if m.createReleaseFunc != nil {
		return m.createReleaseFunc(ctx, req)
	}
	return &model.HostedRelease{
		ID:         int64(len(m.createCalls)),
		TagName:    req.TagName,
		Name:       req.Name,
		Draft:      req.Draft,
		Prerelease: req.Prerelease,
	}, nil
}

func (m *mockHost) UploadAsset(ctx context.Context, releaseID int64, name, path string) error {
	m.uploadCalls = append(m.uploadCalls, uploadCall{ReleaseID: releaseID, Name: name, Path: path})
	if m.uploadAssetFunc != nil {
		return m.uploadAssetFunc(ctx, releaseID, name, path)
	}
	return nil
}

func (m *mockHost) PublishRelease(ctx context.Context, releaseID int64) error {
	m.publishCalls = append(m.publishCalls, releaseID)
	if m.publishFunc != nil {
		return m.publishFunc(ctx, releaseID)
	}
	return nil
}

func (m *mockHost) DeleteRelease(ctx context.Context, releaseID int64) error {
	m.deleteCalls = append(m.deleteCalls, releaseID)
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, releaseID)
	}
	return nil
}

// mockToolchain is a hand-rolled Toolchain for tests.
type mockToolchain struct {
	buildFunc    func(ctx context.Context, dir string, params model.BuildParams) error
	testFunc     func(ctx context.Context, dir string) error
	publishFunc  func(ctx context.Context, dir string, params model.PublishParams) error
	reportedFunc func(ctx context.Context, dir, executable string) (string, error)

	buildCalls   []model.BuildParams
	publishCalls []model.PublishParams
}

func (m *mockToolchain) Build(ctx context.Context, dir string, params model.BuildParams) error {
	m.buildCalls = append(m.buildCalls, params)
	if m.buildFunc != nil {
		return m.buildFunc(ctx, dir, params)
	}
	return nil
}

func (m *mockToolchain) Test(ctx context.Context, dir string) error {
	if m.testFunc != nil {
		return m.testFunc(ctx, dir)
	}
	return nil
}

func (m *mockToolchain) Publish(ctx context.Context, dir string, params model.PublishParams) error {
	m.publishCalls = append(m.publishCalls, params)
	if m.publishFunc != nil {
		return m.publishFunc(ctx, dir, params)
	}
	return nil
}

func (m *mockToolchain) ReportedVersion(ctx context.Context, dir, executable string) (string, error) {
	if m.reportedFunc != nil {
		return m.reportedFunc(ctx, dir, executable)
	}
	return "", errors.New("mock not configured")
}

// mockNotifier records announcements.
type mockNotifier struct {
	announceFunc func(ctx context.Context, rel *model.ResolvedRelease, url string) error

	announceCalls []string
}

func (m *mockNotifier) Announce(ctx context.Context, rel *model.ResolvedRelease, url string) error {
	m.announceCalls = append(m.announceCalls, rel.Tag)
	if m.announceFunc != nil {
		return m.announceFunc(ctx, rel, url)
	}
	return nil
}
