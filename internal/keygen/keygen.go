// Package keygen creates throwaway Ethereum key material: a 12-word BIP-39
// mnemonic and the account at the standard derivation path m/44'/60'/0'/0/0.
//
// The keys are for learning only. Nothing here persists them.
package keygen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

var (
	// ErrEntropy is returned when the random source fails. Callers treat it
	// as fatal.
	ErrEntropy = errors.New("entropy source failure")

	// ErrInvalidMnemonic is returned by FromMnemonic for a phrase that is not
	// valid BIP-39.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)

// entropyBits gives a 12-word mnemonic.
const entropyBits = 128

// KeyMaterial is a generated account.
type KeyMaterial struct {
	Address    string // EIP-55 checksummed
	PrivateKey string // 0x-prefixed hex
	Mnemonic   string // empty when the key was not derived from a phrase
}

// Generator draws entropy and turns it into key material.
type Generator struct {
	entropy io.Reader
	path    accounts.DerivationPath
}

// Option customizes a Generator.
type Option func(*Generator)

// WithEntropy replaces crypto/rand as the entropy source.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) {
		g.entropy = r
	}
}

// New returns a Generator reading from crypto/rand.
func New(opts ...Option) *Generator {
	g := &Generator{
		entropy: rand.Reader,
		path:    accounts.DefaultBaseDerivationPath,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns fresh key material.
func (g *Generator) Generate() (KeyMaterial, error) {
	entropy := make([]byte, entropyBits/8)
	if _, err := io.ReadFull(g.entropy, entropy); err != nil {
		return KeyMaterial{}, fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return KeyMaterial{}, fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	return g.derive(mnemonic)
}

// FromMnemonic derives the key material of an existing phrase.
func (g *Generator) FromMnemonic(mnemonic string) (KeyMaterial, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return KeyMaterial{}, ErrInvalidMnemonic
	}

	return g.derive(mnemonic)
}

func (g *Generator) derive(mnemonic string) (KeyMaterial, error) {
	key, err := hdkeychain.NewMaster(bip39.NewSeed(mnemonic, ""), &chaincfg.MainNetParams)
	if err != nil {
		return KeyMaterial{}, err
	}

	for _, index := range g.path {
		if key, err = key.Derive(index); err != nil {
			return KeyMaterial{}, err
		}
	}

	ecKey, err := key.ECPrivKey()
	if err != nil {
		return KeyMaterial{}, err
	}

	privateKey, err := crypto.ToECDSA(ecKey.Serialize())
	if err != nil {
		return KeyMaterial{}, err
	}

	return KeyMaterial{
		Address:    crypto.PubkeyToAddress(privateKey.PublicKey).Hex(),
		PrivateKey: hexutil.Encode(crypto.FromECDSA(privateKey)),
		Mnemonic:   mnemonic,
	}, nil
}

// Generate returns fresh key material from crypto/rand.
func Generate() (KeyMaterial, error) {
	return New().Generate()
}

// FromMnemonic derives key material from a BIP-39 phrase.
func FromMnemonic(mnemonic string) (KeyMaterial, error) {
	return New().FromMnemonic(mnemonic)
}
