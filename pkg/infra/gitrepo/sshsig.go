package gitrepo

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/pem"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/crypto/ssh"
)

// SSHSIG armored signature format as produced by ssh-keygen -Y sign and
// understood by git's gpg.format=ssh verification. See PROTOCOL.sshsig in
// the OpenSSH source tree.

const (
	sshsigMagic     = "SSHSIG"
	sshsigVersion   = 1
	sshsigNamespace = "git"
	sshsigHashAlg   = "sha512"
	sshsigPEMType   = "SSH SIGNATURE"
)

type sshsigSignedData struct {
	Namespace     string
	Reserved      string
	HashAlgorithm string
	Hash          string
}

type sshsigBlob struct {
	Version       uint32
	PublicKey     string
	Namespace     string
	Reserved      string
	HashAlgorithm string
	Signature     string
}

// sshSigner adapts an ssh.Signer to go-git's commit signer interface by
// emitting SSHSIG armor over the commit object.
type sshSigner struct {
	signer ssh.Signer
}

func newSSHSigner(signer ssh.Signer) *sshSigner {
	return &sshSigner{signer: signer}
}

func (x *sshSigner) Sign(message io.Reader) ([]byte, error) {
	payload, err := io.ReadAll(message)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read message to sign")
	}

	hash := sha512.Sum512(payload)
	signedData := append([]byte(sshsigMagic), ssh.Marshal(sshsigSignedData{
		Namespace:     sshsigNamespace,
		HashAlgorithm: sshsigHashAlg,
		Hash:          string(hash[:]),
	})...)

	sig, err := x.sign(signedData)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to sign commit")
	}

	blob := append([]byte(sshsigMagic), ssh.Marshal(sshsigBlob{
		Version:       sshsigVersion,
		PublicKey:     string(x.signer.PublicKey().Marshal()),
		Namespace:     sshsigNamespace,
		HashAlgorithm: sshsigHashAlg,
		Signature:     string(ssh.Marshal(sig)),
	})...)

	return pem.EncodeToMemory(&pem.Block{Type: sshsigPEMType, Bytes: blob}), nil
}

func (x *sshSigner) sign(data []byte) (*ssh.Signature, error) {
	// ssh-rsa keys must sign with the SHA-2 algorithm family; SSHSIG
	// forbids the legacy SHA-1 signature scheme.
	if as, ok := x.signer.(ssh.AlgorithmSigner); ok && x.signer.PublicKey().Type() == ssh.KeyAlgoRSA {
		return as.SignWithAlgorithm(rand.Reader, data, ssh.KeyAlgoRSASHA512)
	}
	return x.signer.Sign(rand.Reader, data)
}
