package ports

import "context"

// TxManager runs fn so that its repository writes become visible to readers
// all at once.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
