package errors

import (
	"errors"
	"testing"
)

func TestStageError_Stage(t *testing.T) {
	tests := []struct {
		name  string
		error error
		stage string
		want  string
	}{
		{
			name:  "should return the stage",
			error: errors.New("error"),
			stage: "stage",
			want:  "stage",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &StageError{
				error: tt.error,
				stage: tt.stage,
			}

			if got := e.Stage(); got != tt.want {
				t.Errorf("Stage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewStage(t *testing.T) {
	tests := []struct {
		name     string
		stage    string
		default_ string
		err      error
		want     *StageError
	}{
		{
			name:  "should return a new stage error",
			stage: "stage",
			err:   errors.New("error"),
			want: &StageError{
				error: errors.New("error"),
				stage: "stage",
			},
		},
		{
			name:     "should set the default name if none is provided",
			stage:    "",
			default_: "default",
			err:      errors.New("error"),
			want: &StageError{
				error: errors.New("error"),
				stage: "default",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewStage(tt.stage, tt.default_, tt.err); got.stage != tt.want.stage {
				t.Errorf("NewStage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStageError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	e := NewStage("stage", "", cause)
	if !errors.Is(e, cause) {
		t.Errorf("errors.Is() = false, want true")
	}
}
