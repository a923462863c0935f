package workload

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind names a store operation.
type Kind string

const (
	KindPut         Kind = "put"
	KindPutIfAbsent Kind = "put_if_absent"
	KindSet         Kind = "set"
	KindDelete      Kind = "delete"
	KindGet         Kind = "get"
)

// Kinds lists every operation in a stable order.
var Kinds = []Kind{KindPut, KindPutIfAbsent, KindSet, KindDelete, KindGet}

func (k Kind) valid() bool {
	switch k {
	case KindPut, KindPutIfAbsent, KindSet, KindDelete, KindGet:
		return true
	}
	return false
}

// Op is a single store call. Value is ignored by delete and get.
type Op struct {
	Kind  Kind   `yaml:"op"`
	Key   string `yaml:"key"`
	Value string `yaml:"value,omitempty"`
}

func (o Op) String() string {
	switch o.Kind {
	case KindDelete, KindGet:
		return fmt.Sprintf("%s %q", o.Kind, o.Key)
	default:
		return fmt.Sprintf("%s %q=%q", o.Kind, o.Key, o.Value)
	}
}

// Workload is a scripted sequence of operations. A zero Capacity leaves the
// choice to the caller's configuration.
type Workload struct {
	Capacity int  `yaml:"capacity"`
	Ops      []Op `yaml:"ops"`
}

// Parse decodes and validates a YAML workload.
func Parse(ctx context.Context, content []byte) (*Workload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var w Workload
	if err := yaml.Unmarshal(content, &w); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if w.Capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if len(w.Ops) == 0 {
		return nil, ErrEmptyWorkload
	}
	for i := range w.Ops {
		w.Ops[i].Kind = Kind(strings.ToLower(string(w.Ops[i].Kind)))
		if !w.Ops[i].Kind.valid() {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownOp, w.Ops[i].Kind, i)
		}
	}
	return &w, nil
}
