package client

import (
	"github.com/dmitrijs2005/duosync/internal/common"
	"github.com/dmitrijs2005/duosync/internal/remote"
)

var (
	ErrUnavailable  = remote.ErrUnavailable
	ErrUnauthorized = common.ErrorUnauthorized
)
