package compress

// Compress encodes payloads at rest. Used for recycle bin snapshots and
// stored version content.
type Compress interface {
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
	// Name identifies the codec in persisted records.
	Name() string
}
