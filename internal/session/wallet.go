package session

import (
	"context"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/keygen"
	"github.com/gabapcia/web3lab/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
)

func (s *service) Connect(ctx context.Context) (common.Address, error) {
	signer, err := s.connect(ctx)
	if err != nil {
		return common.Address{}, err
	}
	return signer.Address(), nil
}

// connect runs one connect attempt. Only the newest attempt may install
// its signer.
func (s *service) connect(ctx context.Context) (chain.Signer, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	s.connectSeq++
	seq := s.connectSeq
	s.state = Connecting
	s.mu.Unlock()

	signer, err := s.wallet.Connect(ctx)

	s.mu.Lock()
	if seq != s.connectSeq {
		s.mu.Unlock()
		logger.Info(ctx, "discarding superseded connect attempt")
		return nil, ErrConnectSuperseded
	}

	if err != nil {
		s.state = Disconnected
		s.signer = nil
		s.mu.Unlock()
		return nil, s.notifyError(err)
	}

	s.state = Connected
	s.signer = signer
	s.mu.Unlock()

	s.notifier.show(KindSuccess, "钱包连接成功")
	return signer, nil
}

// activeSigner returns the connected signer, connecting first when the
// session has none.
func (s *service) activeSigner(ctx context.Context) (chain.Signer, error) {
	s.mu.Lock()
	signer := s.signer
	s.mu.Unlock()

	if signer != nil {
		return signer, nil
	}
	return s.connect(ctx)
}

func (s *service) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connectSeq++
	s.state = Disconnected
	s.signer = nil
}

func (s *service) RegenerateKeys() (keygen.KeyMaterial, error) {
	keys, err := s.generate()
	if err != nil {
		return keygen.KeyMaterial{}, s.notifyError(err)
	}

	s.mu.Lock()
	s.keys = keys
	s.mu.Unlock()

	return keys, nil
}
