package services

import (
	"context"
	"log"
	"time"

	"ecomauth/internal/repositories"
)

// TokenSweeper periodically purges expired verification tokens. With a
// non-positive interval it does nothing, which keeps the expired rows in
// place for auditing.
type TokenSweeper struct {
	tokens   repositories.VerificationTokenRepository
	interval time.Duration
}

func NewTokenSweeper(tokens repositories.VerificationTokenRepository, interval time.Duration) *TokenSweeper {
	return &TokenSweeper{tokens: tokens, interval: interval}
}

func (s *TokenSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("[auth][sweep] sweeping expired verification tokens every %s", s.interval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.tokens.DeleteExpired(ctx, time.Now())
			if err != nil {
				log.Printf("[auth][sweep] delete expired tokens: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("[auth][sweep] purged %d expired verification tokens", n)
			}
		}
	}
}
