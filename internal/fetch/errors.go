package fetch

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDataLoad matches every *LoadError via errors.Is.
var ErrDataLoad = errors.New("data load failed")

// Stage names the step of a resource load that failed.
type Stage string

const (
	StageRequest Stage = "request"
	StageStatus  Stage = "status"
	StageRead    Stage = "read"
	StageDecode  Stage = "decode"
)

// LoadError is the single failure kind of a load: network, status or parse
// failure of any one resource.
type LoadError struct {
	Resource string
	Stage    Stage
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Resource, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrDataLoad }
