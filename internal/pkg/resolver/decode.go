package resolver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// DecodeList разбирает список, который бэкенд отдаёт либо массивом,
// либо объектом-обёрткой вида {"orders": [...]} или {"data": [...]}.
// Пустое тело и null дают пустой список.
func DecodeList[T any](body []byte, envelopeKeys ...string) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	switch trimmed[0] {
	case '[':
		var list []T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return list, nil

	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("decode envelope: %w", err)
		}

		for _, key := range append(slices.Clip(envelopeKeys), "data") {
			raw, ok := envelope[key]
			if !ok {
				continue
			}
			return DecodeList[T](raw, envelopeKeys...)
		}
		return nil, fmt.Errorf("%w: no list in envelope", ErrUnexpectedPayload)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedPayload, truncate(string(trimmed), maxErrorBody))
	}
}
