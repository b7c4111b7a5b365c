// Package codec selects and constructs a CAN or PDU codec from a MIME
// configuration string (internal/mimetype), mirroring the reference
// CodecFactory's type dispatch.
package codec

import "github.com/kstaniek/ncodec/internal/ncodecerr"

// Re-exported so callers of this package need not import internal/ncodecerr
// directly.
var (
	IsConfigError = ncodecerr.IsConfigError
	IsDecodeError = ncodecerr.IsDecodeError
)
