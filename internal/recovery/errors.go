package recovery

import "errors"

var ErrUnknownHypothesis = errors.New("unknown hypothesis")
