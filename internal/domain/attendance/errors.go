package attendance

import "errors"

var (
	ErrFetchFailed = errors.New("failed to fetch attendance records")
)
