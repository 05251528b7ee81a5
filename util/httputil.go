package util

import (
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// NewRestyClient wraps client without any retry policy. A nil client gets a bare
// transport, which never reads proxy settings from the environment.
func NewRestyClient(client *http.Client, debug bool) *resty.Client {

	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{},
		}
	}

	return resty.
		NewWithClient(client).
		SetRetryCount(0).
		SetLogger(zap.S()).
		SetDebug(debug)
}
