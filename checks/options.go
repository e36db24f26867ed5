package checks

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Options is the per-invocation configuration bag handed to a check.
// Recognized keys are defined by each check.
type Options map[string]any

// Merge returns a new bag holding o's entries overridden by over's.
func (o Options) Merge(over Options) Options {
	out := make(Options, len(o)+len(over))
	for k, v := range o {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Decode copies the recognized keys into out, a pointer to a struct tagged
// with `mapstructure`. Numeric strings are converted ("6" decodes into a
// float64 field).
func (o Options) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(map[string]any(o)); err != nil {
		return fmt.Errorf("decoding options: %w", err)
	}
	return nil
}
