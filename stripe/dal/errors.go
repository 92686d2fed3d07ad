package dal

import (
	"errors"
)

var (
	ErrEventAlreadyProcessed = errors.New("stripe event already processed")
)
