package usecase

import (
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
}

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}
