package auth

import "errors"

var (
	// ErrAuthRequired means the request carried no usable identity.
	ErrAuthRequired = errors.New("authentication required")
	// ErrNotAuthorized means the requester is not the owner of the resource.
	ErrNotAuthorized = errors.New("not authorized")
)

// Authorize is the ownership guard applied before every mutation on an owned
// record. requesterID is zero for anonymous requests.
func Authorize(requesterID, ownerID uint) error {
	if requesterID == 0 {
		return ErrAuthRequired
	}
	if requesterID != ownerID {
		return ErrNotAuthorized
	}
	return nil
}
