//go:build !no_lua

package script

import (
	"testing"
	"time"

	lua "github.com/yuin/gopher-lua"
)

func newSystemState(t *testing.T, at time.Time) (*lua.LState, *[]string) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })

	L := lua.NewState()
	t.Cleanup(L.Close)
	var logs []string
	vm := &scriptVM{logf: func(level, msg string) { logs = append(logs, level+":"+msg) }}
	registerSystemModule(L, vm)
	return L, &logs
}

func TestSystemDatetime(t *testing.T) {
	at := time.Date(2024, time.March, 9, 21, 45, 30, 0, time.UTC)
	L, _ := newSystemState(t, at)

	tests := []struct {
		component string
		want      lua.LValue
	}{
		{"hour", lua.LNumber(21)},
		{"minute", lua.LNumber(45)},
		{"second", lua.LNumber(30)},
		{"weekday", lua.LNumber(6)},
		{"day", lua.LNumber(9)},
		{"month", lua.LNumber(3)},
		{"year", lua.LNumber(2024)},
		{"timestamp", lua.LNumber(at.Unix())},
		{"time_str", lua.LString("21:45:30")},
		{"date_str", lua.LString("2024-03-09")},
	}
	for _, tt := range tests {
		L.SetGlobal("_comp", lua.LString(tt.component))
		if err := L.DoString(`_result = system.datetime(_comp)`); err != nil {
			t.Fatalf("system.datetime(%q): %v", tt.component, err)
		}
		if got := L.GetGlobal("_result"); got != tt.want {
			t.Errorf("system.datetime(%q) = %v, want %v", tt.component, got, tt.want)
		}
	}
}

func TestSystemDatetimeUnknown(t *testing.T) {
	L, _ := newSystemState(t, time.Now())
	if err := L.DoString(`system.datetime("fortnight")`); err == nil {
		t.Fatal("expected error")
	}
}

func TestSystemTimeBetween(t *testing.T) {
	tests := []struct {
		hour, from, to int
		want           bool
	}{
		{10, 8, 22, true},
		{22, 8, 22, false},
		{7, 8, 22, false},
		{23, 22, 6, true},
		{3, 22, 6, true},
		{12, 22, 6, false},
	}
	for _, tt := range tests {
		L, _ := newSystemState(t, time.Date(2024, 1, 1, tt.hour, 0, 0, 0, time.UTC))
		L.SetGlobal("_from", lua.LNumber(tt.from))
		L.SetGlobal("_to", lua.LNumber(tt.to))
		if err := L.DoString(`_result = system.time_between(_from, _to)`); err != nil {
			t.Fatal(err)
		}
		if got := L.GetGlobal("_result"); got != lua.LBool(tt.want) {
			t.Errorf("hour %d in [%d,%d) = %v, want %v", tt.hour, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestSystemLog(t *testing.T) {
	L, logs := newSystemState(t, time.Now())
	if err := L.DoString(`system.log("warn", "low battery")`); err != nil {
		t.Fatal(err)
	}
	if len(*logs) != 1 || (*logs)[0] != "warn:low battery" {
		t.Errorf("logs = %q", *logs)
	}
}
