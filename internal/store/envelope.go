package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/alfredjeanlab/touchgrass/internal/model"
)

// The slot holds a tagged union: {"config": {...}} when populated and {} when
// absent, so a record of all zeros stays distinguishable from no record.
const configTag = "config"

func encodeEnvelope(s model.Storage) ([]byte, error) {
	return json.Marshal(map[string]model.Storage{configTag: s})
}

// decodeEnvelope returns ok=false for the absent case.
func decodeEnvelope(data []byte) (s model.Storage, ok bool, err error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return model.Storage{}, false, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return model.Storage{}, false, fmt.Errorf("decode envelope: %w", err)
	}
	if len(top) == 0 {
		return model.Storage{}, false, nil
	}
	raw, found := top[configTag]
	if !found || len(top) != 1 {
		return model.Storage{}, false, fmt.Errorf("decode envelope: expected a single %q entry", configTag)
	}

	inner, err := objectFields(raw, "user_config", "total_usage")
	if err != nil {
		return model.Storage{}, false, fmt.Errorf("decode storage: %w", err)
	}
	cfg, err := objectFields(inner["user_config"], "block_time_start", "block_time_end", "active_days")
	if err != nil {
		return model.Storage{}, false, fmt.Errorf("decode user_config: %w", err)
	}

	for _, f := range []struct {
		name string
		raw  json.RawMessage
		dst  any
	}{
		{"total_usage", inner["total_usage"], &s.TotalUsage},
		{"block_time_start", cfg["block_time_start"], &s.UserConfig.BlockTimeStart},
		{"block_time_end", cfg["block_time_end"], &s.UserConfig.BlockTimeEnd},
		{"active_days", cfg["active_days"], &s.UserConfig.ActiveDays},
	} {
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return model.Storage{}, false, fmt.Errorf("decode %s: %w", f.name, err)
		}
	}
	if err := s.UserConfig.Validate(); err != nil {
		return model.Storage{}, false, err
	}
	return s, true, nil
}

// objectFields decodes raw as a JSON object whose keys are exactly names.
// Keys are compared case-sensitively, unlike struct decoding in encoding/json.
func objectFields(raw json.RawMessage, names ...string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("expected an object, got null")
	}
	for _, name := range names {
		v, ok := obj[name]
		if !ok {
			return nil, fmt.Errorf("missing field %q", name)
		}
		if string(bytes.TrimSpace(v)) == "null" {
			return nil, fmt.Errorf("field %q is null", name)
		}
	}
	if len(obj) != len(names) {
		for key := range obj {
			if !slices.Contains(names, key) {
				return nil, fmt.Errorf("unknown field %q", key)
			}
		}
	}
	return obj, nil
}
