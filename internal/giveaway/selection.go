package giveaway

import (
	crand "crypto/rand"
	"fmt"
	"math/big"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
)

// RandomIntn returns a uniformly distributed integer in [0, n)
type RandomIntn func(n int) (int, error)

// CryptoIntn is the default RandomIntn backed by crypto/rand
func CryptoIntn(n int) (int, error) {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return int(v.Int64()), nil
}

// SelectWinners draws min(n, len(participants)) distinct users uniformly at random without replacement.
// It shuffles a copy of the participant list (Fisher-Yates) and takes the prefix.
func SelectWinners(participants []domain.Participant, n int, intn RandomIntn) ([]string, error) {
	if n < 1 || len(participants) == 0 {
		return []string{}, nil
	}

	pool := make([]string, len(participants))
	for i, p := range participants {
		pool[i] = p.UserID
	}

	for i := len(pool) - 1; i > 0; i-- {
		j, err := intn(i + 1)
		if err != nil {
			return nil, err
		}
		pool[i], pool[j] = pool[j], pool[i]
	}

	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n], nil
}
