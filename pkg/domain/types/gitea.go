package types

import "log/slog"

type (
	GiteaToken        string
	SigningPrivateKey string
	BranchName        string
	InputName         string
)

func (x GiteaToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GiteaToken) String() string {
	return "***********"
}

func (x SigningPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SigningPrivateKey) String() string {
	return "***********"
}
