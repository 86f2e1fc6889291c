package session

import (
	"context"
	"fmt"

	"github.com/gabapcia/web3lab/internal/chain"
	"github.com/gabapcia/web3lab/internal/swap"
	"github.com/gabapcia/web3lab/internal/tokens"
)

func (s *service) Transfer(ctx context.Context, req tokens.TransferRequest) (chain.Outcome, error) {
	if err := s.begin(); err != nil {
		return chain.Outcome{}, s.notifyError(err)
	}
	defer s.end()

	signer, err := s.activeSigner(ctx)
	if err != nil {
		return chain.Outcome{}, err
	}

	outcome, err := s.tokens.Transfer(ctx, req, signer)
	if err != nil {
		return chain.Outcome{}, s.notifyError(err)
	}

	s.notifier.show(KindSuccess, "交易已提交，等待确认")
	return outcome, nil
}

func (s *service) Estimate(ctx context.Context, req swap.Request) (swap.Quote, error) {
	if err := s.begin(); err != nil {
		return swap.Quote{}, s.notifyError(err)
	}
	defer s.end()

	quote, err := s.swap.Quote(ctx, req)
	if err != nil {
		return swap.Quote{}, s.notifyError(err)
	}

	s.mu.Lock()
	s.estimated = quote.Estimated()
	s.mu.Unlock()

	s.notifier.show(KindSuccess, "已获取预估兑换数量")
	return quote, nil
}

func (s *service) Swap(ctx context.Context, req swap.Request) (chain.Outcome, error) {
	if err := s.begin(); err != nil {
		return chain.Outcome{}, s.notifyError(err)
	}
	defer s.end()

	signer, err := s.activeSigner(ctx)
	if err != nil {
		return chain.Outcome{}, err
	}

	outcome, err := s.swap.Execute(ctx, req, signer)
	if err != nil {
		return chain.Outcome{}, s.notifyError(err)
	}

	s.notifier.show(KindSuccess, "兑换交易已提交")
	return outcome, nil
}

func (s *service) Balance(ctx context.Context, contract, owner string, decimals uint8) (tokens.Balance, error) {
	if err := s.begin(); err != nil {
		return tokens.Balance{}, s.notifyError(err)
	}
	defer s.end()

	if owner == "" {
		s.mu.Lock()
		if s.signer != nil {
			owner = s.signer.Address().Hex()
		}
		s.mu.Unlock()
	}

	balance, err := s.tokens.BalanceOf(ctx, contract, owner, decimals)
	if err != nil {
		return tokens.Balance{}, s.notifyError(err)
	}

	s.notifier.show(KindSuccess, fmt.Sprintf("余额: %s", balance.Formatted))
	return balance, nil
}
