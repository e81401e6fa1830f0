package flows

import "go.uber.org/zap"

// Params are used to pass args into Flow methods.
type Params struct {
	BufferSize  int
	SegmentName string
	Logger      *zap.Logger
}

func applyParams(params ...Params) Params {
	var p Params
	for _, param := range params {
		p = param
	}
	return p
}
