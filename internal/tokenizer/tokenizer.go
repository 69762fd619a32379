// Package tokenizer provides the pluggable tokenizer abstraction used for
// token-budget enforcement. An exact subword codec is used when it can be
// constructed; otherwise an approximate whitespace codec stands in.
package tokenizer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// encodingName is the subword encoding used by the exact codec.
const encodingName = "cl100k_base"

// Unit is one opaque token unit. Exact codecs carry a subword id;
// approximate codecs carry the unit text.
type Unit struct {
	ID   int
	Text string
}

// Codec converts text into a sequence of opaque units and back.
type Codec interface {
	Encode(text string) []Unit
	Decode(units []Unit) (string, error)
}

var (
	defaultOnce  sync.Once
	defaultCodec Codec
)

// Default returns the process-wide codec, constructed once on first use:
// the exact subword codec when its encoding is available, else the
// approximate whitespace codec.
func Default() Codec {
	defaultOnce.Do(func() {
		if enc, err := tiktoken.GetEncoding(encodingName); err == nil {
			defaultCodec = &exactCodec{enc: enc}
		} else {
			defaultCodec = Approx{}
		}
	})
	return defaultCodec
}

// exactCodec wraps a tiktoken encoding.
type exactCodec struct {
	enc *tiktoken.Tiktoken
}

func (c *exactCodec) Encode(text string) []Unit {
	ids := c.enc.Encode(text, nil, nil)
	units := make([]Unit, len(ids))
	for i, id := range ids {
		units[i] = Unit{ID: id}
	}
	return units
}

func (c *exactCodec) Decode(units []Unit) (string, error) {
	ids := make([]int, len(units))
	for i, u := range units {
		ids[i] = u.ID
	}
	return c.enc.Decode(ids), nil
}

// Approx is the documented fallback codec: units are whitespace-separated
// fields and decoding rejoins them with single spaces. Counts are rough but
// never fail.
type Approx struct{}

// Encode splits text on whitespace.
func (Approx) Encode(text string) []Unit {
	fields := strings.Fields(text)
	units := make([]Unit, len(fields))
	for i, f := range fields {
		units[i] = Unit{Text: f}
	}
	return units
}

// Decode rejoins unit texts with spaces.
func (Approx) Decode(units []Unit) (string, error) {
	parts := make([]string, 0, len(units))
	for _, u := range units {
		if u.Text == "" {
			return "", fmt.Errorf("approx codec cannot decode id-only unit %d", u.ID)
		}
		parts = append(parts, u.Text)
	}
	return strings.Join(parts, " "), nil
}
