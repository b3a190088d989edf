package errors

// StorageError marks a persistence-layer failure so handlers can map it to a
// 500 with the underlying cause in the message.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a StorageError.
func NewStorageError(err error) *StorageError {
	return &StorageError{Err: err}
}
