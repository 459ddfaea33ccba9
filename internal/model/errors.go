package model

import "errors"

// Error classes shared across packages. Wrap with
// fmt.Errorf("%w: detail", ...) and test with errors.Is.
//
// ErrData covers malformed or missing NAV data; ErrConfig covers invalid
// weight, threshold or schedule parameters. Both abort the calling
// operation. XIRR solver failures are deliberately not represented here:
// they are downgraded to a logged warning and a zero result at the source.
var (
	ErrData   = errors.New("nav data error")
	ErrConfig = errors.New("invalid configuration")
)
