package boltstore

import "errors"

var (
	ErrOpen   = errors.New("boltstore: failed to open database")
	ErrEncode = errors.New("boltstore: failed to encode session")
	ErrDecode = errors.New("boltstore: failed to decode session")
)
