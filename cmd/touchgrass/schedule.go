package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alfredjeanlab/touchgrass/internal/model"
)

// scheduleFile is the TOML form accepted by "touchgrass apply":
//
//	start = "22:00"
//	end   = "06:00"
//	days  = ["mon", "tue", "wed", "thu", "sun"]
type scheduleFile struct {
	Start string   `toml:"start"`
	End   string   `toml:"end"`
	Days  []string `toml:"days"`
}

func decodeSchedule(data string) (model.Patch, error) {
	var f scheduleFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return model.Patch{}, err
	}
	return f.patch(md)
}

func loadSchedule(path string) (model.Patch, error) {
	var f scheduleFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return model.Patch{}, err
	}
	p, err := f.patch(md)
	if err != nil {
		return model.Patch{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func (f scheduleFile) patch(md toml.MetaData) (model.Patch, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return model.Patch{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	p, err := buildPatch(f.Start, f.End, strings.Join(f.Days, ","), md.IsDefined("days"))
	if err != nil {
		return model.Patch{}, err
	}
	if p.IsEmpty() {
		return model.Patch{}, fmt.Errorf("schedule sets nothing: want start, end or days")
	}
	return p, nil
}
