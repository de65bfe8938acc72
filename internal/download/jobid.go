package download

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// JobIDPrefix starts every job id and hence every produced file name
const JobIDPrefix = "file_"

var fallbackSeq atomic.Uint64

// NewJobID returns a job id unique across jobs of the same user.
// UUID v7 is time ordered and keeps a monotonic sequence within a millisecond.
func NewJobID(userID int64) string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp plus counter if UUID generation fails
		return fmt.Sprintf("%s%d_%d_%d", JobIDPrefix, userID, time.Now().UnixNano(), fallbackSeq.Add(1))
	}
	return fmt.Sprintf("%s%d_%s", JobIDPrefix, userID, id.String())
}
