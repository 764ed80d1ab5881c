package strategy

import (
	"fmt"

	"github.com/arloliu/ndspace/types"
)

// checkWorker validates a worker identity against the worker count.
func checkWorker(workerID, workerCount int) error {
	if workerCount < 1 {
		return fmt.Errorf("worker count %d: %w", workerCount, types.ErrInvalidWorker)
	}
	if workerID < 0 || workerID >= workerCount {
		return fmt.Errorf("worker %d of %d: %w", workerID, workerCount, types.ErrInvalidWorker)
	}

	return nil
}
