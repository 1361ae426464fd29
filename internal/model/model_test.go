package model

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    Minutes
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"17:00", 1020, false},
		{"23:59", 1439, false},
		{" 6:05 ", 365, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"1200", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	} {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) = %d, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMinutes_Clock(t *testing.T) {
	for _, tc := range []struct {
		m    Minutes
		want string
	}{
		{0, "00:00"},
		{365, "06:05"},
		{1320, "22:00"},
		{1439, "23:59"},
	} {
		if got := tc.m.Clock(); got != tc.want {
			t.Errorf("Minutes(%d).Clock() = %q, want %q", tc.m, got, tc.want)
		}
		back, err := ParseClock(tc.m.Clock())
		if err != nil || back != tc.m {
			t.Errorf("ParseClock(%q) = %d, %v; want %d", tc.m.Clock(), back, err, tc.m)
		}
	}
}

func TestMinutes_Valid(t *testing.T) {
	if !Minutes(1439).Valid() {
		t.Error("1439 should be valid")
	}
	if Minutes(1440).Valid() {
		t.Error("1440 should be invalid")
	}
}

func TestWeekdays_Has(t *testing.T) {
	w := Monday | Tuesday
	for i, want := range []bool{true, true, false, false, false, false, false} {
		if got := w.Has(i); got != want {
			t.Errorf("Has(%d) = %v, want %v", i, got, want)
		}
	}
	if w.Has(-1) || w.Has(7) {
		t.Error("out-of-range index should never be set")
	}
	if w != 0b0000011 {
		t.Errorf("Monday|Tuesday = %#b, want 0b11", uint8(w))
	}
}

func TestParseWeekdays(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    Weekdays
		wantErr bool
	}{
		{"mon,tue", Monday | Tuesday, false},
		{"Monday, Friday", Monday | Friday, false},
		{"weekdays", Workdays, false},
		{"weekend", Saturday | Sunday, false},
		{"all", AllDays, false},
		{"none", 0, false},
		{"", 0, false},
		{"sun,funday", 0, true},
	} {
		got, err := ParseWeekdays(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseWeekdays(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeekdays(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseWeekdays(%q) = %#b, want %#b", tc.in, uint8(got), uint8(tc.want))
		}
	}
}

func TestWeekdays_String(t *testing.T) {
	for _, tc := range []struct {
		w    Weekdays
		want string
	}{
		{0, "none"},
		{Monday | Tuesday, "mon,tue"},
		{Sunday, "sun"},
		{AllDays, "mon,tue,wed,thu,fri,sat,sun"},
	} {
		if got := tc.w.String(); got != tc.want {
			t.Errorf("Weekdays(%#b).String() = %q, want %q", uint8(tc.w), got, tc.want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Zero", Config{}, false},
		{"Wraparound", Config{BlockTimeStart: 1320, BlockTimeEnd: 360, ActiveDays: AllDays}, false},
		{"StartOutOfRange", Config{BlockTimeStart: 1440}, true},
		{"EndOutOfRange", Config{BlockTimeEnd: 5000}, true},
		{"EighthBitKept", Config{ActiveDays: 0x80}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
				}
				var ve *ValidationError
				if !errors.As(err, &ve) || len(ve.Errors) == 0 {
					t.Fatalf("expected *ValidationError with field errors, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestPatch_Apply(t *testing.T) {
	start, end := Minutes(480), Minutes(1020)
	days := Monday | Wednesday

	s := Storage{UserConfig: Config{BlockTimeStart: 1, BlockTimeEnd: 2, ActiveDays: Sunday}, TotalUsage: 41}
	Patch{BlockTimeStart: &start, AddUsage: 1}.Apply(&s)
	if s.UserConfig.BlockTimeStart != 480 || s.UserConfig.BlockTimeEnd != 2 || s.UserConfig.ActiveDays != Sunday {
		t.Fatalf("partial patch touched absent fields: %+v", s.UserConfig)
	}
	if s.TotalUsage != 42 {
		t.Fatalf("TotalUsage = %d, want 42", s.TotalUsage)
	}

	Patch{BlockTimeEnd: &end, ActiveDays: &days}.Apply(&s)
	want := Storage{UserConfig: Config{BlockTimeStart: 480, BlockTimeEnd: 1020, ActiveDays: days}, TotalUsage: 42}
	if s != want {
		t.Fatalf("got %+v, want %+v", s, want)
	}
}

func TestPatch_IsEmpty(t *testing.T) {
	if !(Patch{}).IsEmpty() {
		t.Error("zero Patch should be empty")
	}
	m := Minutes(0)
	if (Patch{BlockTimeStart: &m}).IsEmpty() {
		t.Error("Patch with a zero-valued field is not empty")
	}
}

func TestDefaultStorage(t *testing.T) {
	if DefaultStorage() != (Storage{}) {
		t.Fatalf("DefaultStorage() = %+v, want zero value", DefaultStorage())
	}
}
