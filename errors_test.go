package flows

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode_Message(t *testing.T) {
	tests := []struct {
		name    string
		code    ErrorCode
		msg     string
		segment string
		want    string
	}{
		{
			name:    "should format a MAP error message",
			code:    MAP,
			msg:     "boom",
			segment: "squares",
			want:    "flow MAP error (code: 1 segment: squares, message: boom)",
		},
		{
			name:    "should format a TAP error message",
			code:    TAP,
			msg:     "boom",
			segment: "",
			want:    "flow TAP error (code: 4 segment: , message: boom)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.code.Message(tt.msg, tt.segment)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsErrorHelpers(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{
			name:  "should classify a RUN error",
			err:   newRunError("segment", cause),
			check: IsRunError,
			want:  true,
		},
		{
			name:  "should classify a MAP error",
			err:   newMapError("segment", cause),
			check: IsMapError,
			want:  true,
		},
		{
			name:  "should classify a FILTER error",
			err:   newFilterError("segment", cause),
			check: IsFilterError,
			want:  true,
		},
		{
			name:  "should classify a FLAT_MAP error",
			err:   newFlatMapError("segment", cause),
			check: IsFlatMapError,
			want:  true,
		},
		{
			name:  "should classify a TAP error",
			err:   newTapError("segment", cause),
			check: IsTapError,
			want:  true,
		},
		{
			name:  "should classify a FOLD error",
			err:   newFoldError("segment", cause),
			check: IsFoldError,
			want:  true,
		},
		{
			name:  "should not cross-classify codes",
			err:   newMapError("segment", cause),
			check: IsFilterError,
			want:  false,
		},
		{
			name:  "should not classify a plain error",
			err:   cause,
			check: IsMapError,
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestError_StageAndUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := newFilterError("odds", cause)

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, "odds", e.Stage())
	assert.True(t, errors.Is(err, cause))
}
