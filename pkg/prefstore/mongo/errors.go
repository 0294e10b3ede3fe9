package mongo

import "errors"

var (
	ErrMongoNotReady = errors.New("mongo did not become ready within the given attempts")
)
