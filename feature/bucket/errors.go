package bucket

import "errors"

var (
	// ErrBucketNotFound means every candidate region denied serving the
	// bucket during resolution.
	ErrBucketNotFound = errors.New("bucket not found in any candidate region")
	// ErrDirNotFound means the addressed directory has no marker key.
	ErrDirNotFound = errors.New("bucket dir not found")
	// ErrObjectNotInDir means the object exists but is not listed under
	// the directory part of the path it was addressed by.
	ErrObjectNotInDir = errors.New("object not found in dir")
)
