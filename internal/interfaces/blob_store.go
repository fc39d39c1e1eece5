package interfaces

// BlobStore is the key-value persistence capability the ledger writes
// its serialized state to. Get reports ok=false for an absent key;
// Set overwrites the full value unconditionally.
type BlobStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
