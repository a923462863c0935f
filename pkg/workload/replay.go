package workload

import (
	"context"
	"errors"
	"fmt"
)

// Store is the error-reporting operation set of cache.SimpleLRU and its wrappers.
type Store interface {
	TryPut(key, value []byte) error
	TryPutIfAbsent(key, value []byte) error
	TrySet(key, value []byte) error
	TryDelete(key []byte) error
	TryGet(key []byte) ([]byte, error)
}

// Result is the outcome of one operation. Err holds the store's reason for a
// negative result, such as cache.ErrKeyMissing.
type Result struct {
	Op    Op
	OK    bool
	Value []byte
	Err   error
}

func (r Result) String() string {
	switch {
	case !r.OK:
		return fmt.Sprintf("%s: %v", r.Op, r.Err)
	case r.Op.Kind == KindGet:
		return fmt.Sprintf("%s -> %q", r.Op, r.Value)
	default:
		return fmt.Sprintf("%s: ok", r.Op)
	}
}

// Apply runs a single operation against store.
func Apply(store Store, op Op) Result {
	key, value := []byte(op.Key), []byte(op.Value)

	var err error
	res := Result{Op: op}
	switch op.Kind {
	case KindPut:
		err = store.TryPut(key, value)
	case KindPutIfAbsent:
		err = store.TryPutIfAbsent(key, value)
	case KindSet:
		err = store.TrySet(key, value)
	case KindDelete:
		err = store.TryDelete(key)
	case KindGet:
		res.Value, err = store.TryGet(key)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownOp, op.Kind)
	}
	res.OK = err == nil
	res.Err = err
	return res
}

// Replay applies ops in order and returns their results. It stops between
// operations when ctx is done, returning the results gathered so far.
func Replay(ctx context.Context, store Store, ops []Op) ([]Result, error) {
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return results, errors.Join(ErrReplayCancelled, err)
		}
		results = append(results, Apply(store, op))
	}
	return results, nil
}
