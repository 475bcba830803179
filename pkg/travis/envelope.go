package travis

import (
	"encoding/json"
	"fmt"
)

// EnvelopeWarning is attached to responses when the service wants to flag
// something about the request without failing it (e.g. ignored parameters).
type EnvelopeWarning struct {
	Message     string `json:"message"                yaml:"message"`
	WarningType string `json:"warning_type,omitempty" yaml:"warning_type,omitempty"`
	Parameter   string `json:"parameter,omitempty"    yaml:"parameter,omitempty"`
}

// Envelope is the decoded wrapper around a single resource or a collection.
// It carries the declared type tag, the canonical path of the resource, and,
// for collections, the pagination metadata. The payload itself is exposed
// through Object; access to inner fields is a plain read-through.
type Envelope[T any] struct {
	Type           string
	Href           string
	Representation string
	Pagination     *Pagination
	Warnings       []EnvelopeWarning
	Object         T
}

// Items forwards iteration to the wrapped collection. It is a no-op
// accessor: the returned slice is the envelope's payload, in response order.
func Items[T any](env *Envelope[[]T]) []T {
	if env == nil {
		return nil
	}

	return env.Object
}

// DecodeEnvelope unwraps a v3 response document into a typed envelope.
//
// The document must be a JSON object carrying "@type" and "@href". The value
// of "@type" doubles as the key under which a collection payload is nested:
// when a key equal to the discriminator is present, T is decoded from that
// nested value; when it is absent, the resource's own fields are inlined
// with the metadata keys and T is decoded from the entire document.
// Nested-key presence always wins, and a nested value that fails to decode
// as T is a schema mismatch, never a silent fallback.
func DecodeEnvelope[T any](data []byte) (*Envelope[T], error) {
	var raw map[string]json.RawMessage

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	typeRaw, ok := raw["@type"]
	if !ok {
		return nil, ErrMissingDiscriminator
	}

	var discriminator string
	if err := json.Unmarshal(typeRaw, &discriminator); err != nil {
		return nil, fmt.Errorf("%w: @type is not a string", ErrSchemaMismatch)
	}

	hrefRaw, ok := raw["@href"]
	if !ok {
		return nil, &MissingFieldError{Field: "@href"}
	}

	env := &Envelope[T]{Type: discriminator}

	if err := json.Unmarshal(hrefRaw, &env.Href); err != nil {
		return nil, fmt.Errorf("%w: @href is not a string", ErrSchemaMismatch)
	}

	if repRaw, ok := raw["@representation"]; ok {
		_ = json.Unmarshal(repRaw, &env.Representation)
	}

	if pagRaw, ok := raw["@pagination"]; ok {
		if err := json.Unmarshal(pagRaw, &env.Pagination); err != nil {
			return nil, fmt.Errorf("%w: invalid @pagination", ErrSchemaMismatch)
		}
	}

	if warnRaw, ok := raw["@warnings"]; ok {
		_ = json.Unmarshal(warnRaw, &env.Warnings)
	}

	nested, ok := raw[discriminator]
	if ok {
		// Collection case: the discriminator names the key holding the
		// payload, e.g. "repositories" for a repository list.
		if err := json.Unmarshal(nested, &env.Object); err != nil {
			return nil, fmt.Errorf("%w: decoding %q payload: %w", ErrSchemaMismatch, discriminator, err)
		}

		return env, nil
	}

	// Single-resource case: the payload's fields are merged at the top
	// level with the metadata keys.
	if err := json.Unmarshal(data, &env.Object); err != nil {
		return nil, fmt.Errorf("%w: decoding %q resource: %w", ErrSchemaMismatch, discriminator, err)
	}

	return env, nil
}
