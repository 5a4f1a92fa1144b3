package infra

import (
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/interfaces"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/infra/nix"
)

type Clients struct {
	lockUpdater interfaces.LockUpdater
	publisher   interfaces.ReviewPublisher
	gitRepo     interfaces.GitRepo
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		lockUpdater: nix.New("nix"),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) LockUpdater() interfaces.LockUpdater {
	return x.lockUpdater
}
func (x *Clients) Publisher() interfaces.ReviewPublisher {
	return x.publisher
}
func (x *Clients) GitRepo() interfaces.GitRepo {
	return x.gitRepo
}

func WithLockUpdater(client interfaces.LockUpdater) Option {
	return func(x *Clients) {
		x.lockUpdater = client
	}
}

func WithPublisher(client interfaces.ReviewPublisher) Option {
	return func(x *Clients) {
		x.publisher = client
	}
}

func WithGitRepo(repo interfaces.GitRepo) Option {
	return func(x *Clients) {
		x.gitRepo = repo
	}
}
