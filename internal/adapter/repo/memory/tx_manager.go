package memory

import "context"

type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

// RunInTx holds the store lock for fn and restores the prior state when fn
// returns an error. Nested calls join the outer transaction.
func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	saved := t.store.snapshot()
	if err := fn(withTx(ctx)); err != nil {
		t.store.restore(saved)
		return err
	}
	return nil
}
