package streamcodec

import "errors"

// ErrUnknownEncoding is returned by the registry (see names.go) when asked
// for a codec under a name it does not recognize.
var ErrUnknownEncoding = errors.New("streamcodec: unknown encoding")

// ErrNotBOMAware is returned by PrependBOMNamed and StripBOMNamed (see
// bom.go) when asked to wrap a codec whose descriptor does not advertise
// BOM awareness.
var ErrNotBOMAware = errors.New("streamcodec: encoding is not BOM-aware")
