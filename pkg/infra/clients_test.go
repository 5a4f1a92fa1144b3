package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/mock"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/infra"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		// LockUpdater defaults to a nix client on PATH
		lockUpdater := clients.LockUpdater()
		gt.V(t, clients.LockUpdater()).Equal(lockUpdater)
		// Publisher and GitRepo require configuration
		gt.V(t, clients.Publisher()).Equal(nil)
		gt.V(t, clients.GitRepo()).Equal(nil)
	})

	t.Run("WithLockUpdater option sets the lock updater", func(t *testing.T) {
		mockNix := &mock.LockUpdaterMock{}
		clients := infra.New(infra.WithLockUpdater(mockNix))
		gt.V(t, clients.LockUpdater()).Equal(mockNix)
	})

	t.Run("WithPublisher option sets the publisher", func(t *testing.T) {
		mockPublisher := &mock.ReviewPublisherMock{}
		clients := infra.New(infra.WithPublisher(mockPublisher))
		gt.V(t, clients.Publisher()).Equal(mockPublisher)
	})

	t.Run("WithGitRepo option sets the git repository", func(t *testing.T) {
		mockRepo := &mock.GitRepoMock{}
		clients := infra.New(infra.WithGitRepo(mockRepo))
		gt.V(t, clients.GitRepo()).Equal(mockRepo)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockNix := &mock.LockUpdaterMock{}
		mockPublisher := &mock.ReviewPublisherMock{}
		mockRepo := &mock.GitRepoMock{}

		clients := infra.New(
			infra.WithLockUpdater(mockNix),
			infra.WithPublisher(mockPublisher),
			infra.WithGitRepo(mockRepo),
		)

		gt.V(t, clients.LockUpdater()).Equal(mockNix)
		gt.V(t, clients.Publisher()).Equal(mockPublisher)
		gt.V(t, clients.GitRepo()).Equal(mockRepo)
	})
}
