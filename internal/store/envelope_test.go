package store

import (
	"testing"

	"github.com/alfredjeanlab/touchgrass/internal/model"
)

func TestEncodeEnvelope(t *testing.T) {
	data, err := encodeEnvelope(model.Storage{
		UserConfig: model.Config{BlockTimeStart: 480, BlockTimeEnd: 1020, ActiveDays: 3},
		TotalUsage: 7,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"config":{"user_config":{"block_time_start":480,"block_time_end":1020,"active_days":3},"total_usage":7}}`
	if string(data) != want {
		t.Fatalf("encode = %s\nwant     %s", data, want)
	}
}

func TestDecodeEnvelope_Absent(t *testing.T) {
	for _, raw := range []string{"", "{}", "null", "  "} {
		_, ok, err := decodeEnvelope([]byte(raw))
		if err != nil || ok {
			t.Errorf("decode(%q) = ok=%v err=%v; want absent", raw, ok, err)
		}
	}
}

func TestDecodeEnvelope_Populated(t *testing.T) {
	raw := `{"config":{"total_usage":90,"user_config":{"active_days":127,"block_time_end":360,"block_time_start":1320}}}`
	got, ok, err := decodeEnvelope([]byte(raw))
	if err != nil || !ok {
		t.Fatalf("decode = ok=%v err=%v", ok, err)
	}
	want := model.Storage{UserConfig: model.Config{BlockTimeStart: 1320, BlockTimeEnd: 360, ActiveDays: model.AllDays}, TotalUsage: 90}
	if got != want {
		t.Fatalf("decode = %+v, want %+v", got, want)
	}
}
