// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/formana/formana/account"
	"github.com/formana/formana/fault"
)

// limits enforced by the ledger
const (
	MaximumSeeds      = 16 // including the bump
	MaximumSeedLength = 32
	MaximumBump       = 255
)

// Derived - an address and the bump that produced it
type Derived struct {
	Address account.Identifier `json:"address"`
	Bump    uint8              `json:"bump"`
}

// Deriver - address derivation over a particular primitive
type Deriver struct {
	primitive Primitive
}

// New - create a deriver, nil selects the Ed25519 primitive
func New(primitive Primitive) *Deriver {
	if nil == primitive {
		primitive = Ed25519
	}
	return &Deriver{
		primitive: primitive,
	}
}

var defaultDeriver = New(Ed25519)

// Derive - find the highest bump giving an off-curve address
func (d *Deriver) Derive(programID account.Identifier, seeds [][]byte) (Derived, error) {
	err := checkSeeds(seeds)
	if nil != err {
		return Derived{}, err
	}

	bump := MaximumBump
	for ; bump >= 0; bump -= 1 {
		candidate := d.primitive.Digest(programID, seeds, byte(bump))
		if !d.primitive.IsOnCurve(candidate) {
			return Derived{
				Address: candidate,
				Bump:    uint8(bump),
			}, nil
		}
	}
	return Derived{}, fault.ErrDerivationExhausted
}

// Create - the address for a known bump
func (d *Deriver) Create(programID account.Identifier, seeds [][]byte, bump uint8) (account.Identifier, error) {
	err := checkSeeds(seeds)
	if nil != err {
		return account.Zero, err
	}

	candidate := d.primitive.Digest(programID, seeds, bump)
	if d.primitive.IsOnCurve(candidate) {
		return account.Zero, fault.ErrOnCurve
	}
	return candidate, nil
}

// Verify - check that candidate is the canonical address for the seeds
// and return its bump
func (d *Deriver) Verify(programID account.Identifier, seeds [][]byte, candidate account.Identifier) (uint8, error) {
	derived, err := d.Derive(programID, seeds)
	if nil != err {
		return 0, err
	}
	if derived.Address != candidate {
		return 0, fault.ErrAddressMismatch
	}
	return derived.Bump, nil
}

// Derive - derive using the Ed25519 primitive
func Derive(programID account.Identifier, seeds [][]byte) (Derived, error) {
	return defaultDeriver.Derive(programID, seeds)
}

// Create - create using the Ed25519 primitive
func Create(programID account.Identifier, seeds [][]byte, bump uint8) (account.Identifier, error) {
	return defaultDeriver.Create(programID, seeds, bump)
}

// Verify - verify using the Ed25519 primitive
func Verify(programID account.Identifier, seeds [][]byte, candidate account.Identifier) (uint8, error) {
	return defaultDeriver.Verify(programID, seeds, candidate)
}

func checkSeeds(seeds [][]byte) error {
	if len(seeds) >= MaximumSeeds {
		return fault.ErrTooManySeeds
	}
	for _, seed := range seeds {
		if len(seed) > MaximumSeedLength {
			return fault.ErrSeedTooLong
		}
	}
	return nil
}
