// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/gagliardetto/solana-go"
	"golang.org/x/crypto/ed25519"

	"github.com/formana/formana/account"
	"github.com/formana/formana/fault"
)

// Signer - a key holder able to sign transaction messages
type Signer interface {
	Identifier() account.Identifier
	Sign(message []byte) ([]byte, error)
}

type keySigner struct {
	privateKey ed25519.PrivateKey
	identifier account.Identifier
}

// NewSigner - a signer for an ed25519 private key
func NewSigner(privateKey ed25519.PrivateKey) (Signer, error) {
	if ed25519.PrivateKeySize != len(privateKey) {
		return nil, fault.ErrInvalidPrivateKey
	}
	publicKey := privateKey.Public().(ed25519.PublicKey)
	id, err := account.IdentifierFromPublicKey(publicKey)
	if nil != err {
		return nil, err
	}
	return &keySigner{
		privateKey: privateKey,
		identifier: id,
	}, nil
}

// SignerFromKeygenFile - read a JSON key file as written by solana-keygen
func SignerFromKeygenFile(fileName string) (Signer, error) {
	key, err := solana.PrivateKeyFromSolanaKeygenFile(fileName)
	if nil != err {
		return nil, err
	}
	return NewSigner(ed25519.PrivateKey(key))
}

func (s *keySigner) Identifier() account.Identifier {
	return s.identifier
}

func (s *keySigner) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(s.privateKey, message), nil
}
