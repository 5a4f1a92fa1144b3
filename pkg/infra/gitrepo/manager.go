package gitrepo

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/interfaces"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/utils/logging"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/utils/safe"
)

const worktreeDirPrefix = "update-flake-inputs-"

// Identity is a git author or committer.
type Identity struct {
	Name  string
	Email string
}

// Manager hands out isolated checkouts of one source repository, each bound
// to a single branch name for its lifetime. Checkouts are full clones in
// private temporary directories, so uncommitted state never leaks between
// update attempts, and every checkout starts from the current tip of the
// base branch.
type Manager struct {
	sourcePath string
	baseBranch string
	remoteURL  string
	token      types.GiteaToken
	author     Identity
	committer  Identity
	signing    *Signing

	mu     sync.Mutex
	active map[types.BranchName]struct{}
}

var _ interfaces.GitRepo = (*Manager)(nil)

type Option func(*Manager)

func WithBaseBranch(branch string) Option {
	return func(x *Manager) {
		x.baseBranch = branch
	}
}

func WithToken(token types.GiteaToken) Option {
	return func(x *Manager) {
		x.token = token
	}
}

func WithAuthor(name, email string) Option {
	return func(x *Manager) {
		x.author = Identity{Name: name, Email: email}
	}
}

func WithCommitter(name, email string) Option {
	return func(x *Manager) {
		x.committer = Identity{Name: name, Email: email}
	}
}

// WithSigning attaches a signing configurator. Commits made through the
// manager are signed, and every checkout gets the repository-local signing
// configuration applied.
func WithSigning(signing *Signing) Option {
	return func(x *Manager) {
		x.signing = signing
	}
}

// New opens the repository at sourcePath and resolves the push URL from its
// origin remote. The repository must already be a checkout with an origin.
func New(sourcePath string, options ...Option) (*Manager, error) {
	repo, err := git.PlainOpen(sourcePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository", goerr.V("path", sourcePath))
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get origin remote", goerr.V("path", sourcePath))
	}
	if len(remote.Config().URLs) == 0 {
		return nil, goerr.New("origin remote has no URL", goerr.V("path", sourcePath))
	}

	m := &Manager{
		sourcePath: sourcePath,
		baseBranch: "main",
		remoteURL:  remote.Config().URLs[0],
		active:     map[types.BranchName]struct{}{},
	}

	for _, opt := range options {
		opt(m)
	}

	// Signing applies to the source repository as well as to every
	// checkout, so commits made outside the manager are signed too.
	if err := m.signing.Apply(repo); err != nil {
		return nil, err
	}

	return m, nil
}

// Acquire clones the base branch tip into a fresh temporary directory and
// checks out a new branch there. At most one live checkout may exist per
// branch name; a second acquisition for an active branch is a contract
// violation and is reported as types.ErrBranchActive rather than being
// treated as an ordinary per-attempt failure.
//
// The returned worktree must be closed on every exit path of the owning
// attempt; Close reclaims the directory and the branch name.
func (x *Manager) Acquire(ctx context.Context, branch types.BranchName) (interfaces.Worktree, error) {
	x.mu.Lock()
	if _, ok := x.active[branch]; ok {
		x.mu.Unlock()
		return nil, goerr.Wrap(types.ErrBranchActive, "worktree acquisition refused", goerr.V("branch", branch))
	}
	x.active[branch] = struct{}{}
	x.mu.Unlock()

	wt, err := x.checkout(ctx, branch)
	if err != nil {
		x.release(branch)
		return nil, goerr.Wrap(types.ErrWorktree, "failed to acquire worktree",
			goerr.V("branch", branch),
			goerr.V("error", err),
		)
	}

	return wt, nil
}

func (x *Manager) checkout(ctx context.Context, branch types.BranchName) (*Worktree, error) {
	dir, err := os.MkdirTemp("", worktreeDirPrefix)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create temp directory")
	}

	logging.From(ctx).Debug("cloning base branch",
		"source", x.sourcePath,
		"base", x.baseBranch,
		"branch", branch,
		"dir", dir,
	)

	repo, err := git.PlainClone(dir, false, &git.CloneOptions{
		URL:           x.sourcePath,
		ReferenceName: plumbing.NewBranchReferenceName(x.baseBranch),
		SingleBranch:  true,
	})
	if err != nil {
		safe.RemoveAll(dir)
		return nil, goerr.Wrap(err, "failed to clone base branch", goerr.V("base", x.baseBranch))
	}

	head, err := repo.Head()
	if err != nil {
		safe.RemoveAll(dir)
		return nil, goerr.Wrap(err, "failed to get HEAD of clone")
	}

	// A fresh clone cannot carry a stale branch of this name, so setting
	// the reference and checking it out replaces any previous run's work.
	refName := plumbing.NewBranchReferenceName(string(branch))
	if err := repo.Storer.SetReference(plumbing.NewHashReference(refName, head.Hash())); err != nil {
		safe.RemoveAll(dir)
		return nil, goerr.Wrap(err, "failed to set branch reference", goerr.V("branch", branch))
	}

	tree, err := repo.Worktree()
	if err != nil {
		safe.RemoveAll(dir)
		return nil, goerr.Wrap(err, "failed to get worktree")
	}
	if err := tree.Checkout(&git.CheckoutOptions{Branch: refName}); err != nil {
		safe.RemoveAll(dir)
		return nil, goerr.Wrap(err, "failed to checkout branch", goerr.V("branch", branch))
	}

	if err := x.signing.Apply(repo); err != nil {
		safe.RemoveAll(dir)
		return nil, goerr.Wrap(err, "failed to apply signing configuration")
	}

	return &Worktree{
		manager: x,
		branch:  branch,
		path:    dir,
		repo:    repo,
	}, nil
}

func (x *Manager) release(branch types.BranchName) {
	x.mu.Lock()
	delete(x.active, branch)
	x.mu.Unlock()
}

func (x *Manager) pushAuth() *githttp.BasicAuth {
	if x.token == "" || !strings.HasPrefix(x.remoteURL, "http") {
		return nil
	}
	return &githttp.BasicAuth{
		Username: "update-flake-inputs",
		Password: string(x.token),
	}
}

func (x *Manager) push(ctx context.Context, repo *git.Repository, branch types.BranchName) error {
	refSpec := gitconfig.RefSpec("refs/heads/" + string(branch) + ":refs/heads/" + string(branch))

	logging.From(ctx).Debug("pushing branch", "refspec", refSpec, "remote", x.remoteURL)

	err := repo.PushContext(ctx, &git.PushOptions{
		RemoteName: git.DefaultRemoteName,
		RemoteURL:  x.remoteURL,
		RefSpecs:   []gitconfig.RefSpec{refSpec},
		Force:      true,
		Auth:       x.pushAuth(),
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return goerr.Wrap(err, "failed to push branch", goerr.V("branch", branch))
	}

	return nil
}
