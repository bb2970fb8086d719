// SPDX-License-Identifier: EPL-2.0

package decode

import "errors"

var (
	// ErrNotApplicable reports that the fast path declined the source; it
	// is consumed internally by the strategy cascade and never escapes
	// Decode.
	ErrNotApplicable = errors.New("fast path not applicable")

	ErrOpenFailed        = errors.New("cannot open audio source")
	ErrFormatNegotiation = errors.New("cannot produce requested output format")
	ErrEmptyOutput       = errors.New("decoder produced no samples")
)
