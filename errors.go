package kdgo

import (
	"errors"

	"github.com/hupe1980/kdgo/internal/selection"
)

var (
	// ErrInvalidK is returned when k is negative.
	ErrInvalidK = errors.New("k must not be negative")

	// ErrRankOutOfRange is the error carried by the panic raised when median
	// selection is asked for a rank outside its input. It signals an internal
	// bug and is never returned.
	ErrRankOutOfRange = selection.ErrRankOutOfRange
)
