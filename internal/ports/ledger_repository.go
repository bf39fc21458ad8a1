package ports

import (
	"context"

	"github.com/bnema/course-reg-cli/internal/domain"
)

// LedgerRepository persists the session ledger between invocations.
type LedgerRepository interface {
	Load(ctx context.Context) (domain.Ledger, error)
	Save(ctx context.Context, ledger domain.Ledger) error
}
