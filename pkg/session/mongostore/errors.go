package mongostore

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrEmptyConnectionURL     = errors.New("empty mongo connection URL")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrFailedToCreateIndex    = errors.New("failed to create sessions index")
)
