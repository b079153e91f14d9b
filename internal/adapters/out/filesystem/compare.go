package filesystem

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/clockz"
)

// CopyComparison holds the durations measured by CompareCopy.
type CopyComparison struct {
	Buffered time.Duration
	Bulk     time.Duration
	Bytes    int64
}

func (c CopyComparison) String() string {
	return fmt.Sprintf("IO Time: %d ms, NIO Time: %d ms", c.Buffered.Milliseconds(), c.Bulk.Milliseconds())
}

// CompareCopy copies src twice, to bufferedDst with BufferedCopy and to bulkDst
// with BulkCopy, timing each on clock. The figures are illustrative only.
func CompareCopy(ctx context.Context, clock clockz.Clock, src, bufferedDst, bulkDst string) (CopyComparison, error) {
	var result CopyComparison

	start := clock.Now()
	if err := BufferedCopy(ctx, src, bufferedDst); err != nil {
		return result, err
	}
	result.Buffered = clock.Since(start)

	start = clock.Now()
	written, err := BulkCopy(src, bulkDst)
	if err != nil {
		return result, err
	}
	result.Bulk = clock.Since(start)
	result.Bytes = written

	return result, nil
}
