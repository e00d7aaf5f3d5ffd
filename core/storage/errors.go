package storage

import (
	"errors"
	"net/http"

	"github.com/minio/minio-go/v7"
)

// Error codes the provider returns in its wire responses.
const (
	CodeNoSuchBucket = "NoSuchBucket"
	CodeNoSuchKey    = "NoSuchKey"
)

// IsNoSuchBucket reports whether err is the provider's signal that the
// addressed bucket does not exist at the probed endpoint. This is the only
// error that region resolution treats as "try the next region".
func IsNoSuchBucket(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == CodeNoSuchBucket
	}
	return false
}

// IsNotFound reports whether err means the addressed object or bucket is
// absent, as opposed to a transport or authorization failure.
func IsNotFound(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == CodeNoSuchKey ||
			resp.Code == CodeNoSuchBucket ||
			resp.StatusCode == http.StatusNotFound
	}
	return false
}

// ErrorCode returns the provider error code carried by err, or "" when err
// is nil or not a provider response.
func ErrorCode(err error) string {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code
	}
	return ""
}
