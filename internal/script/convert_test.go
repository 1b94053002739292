//go:build !no_lua

package script

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"zigbee-go-zcl/internal/zcl"
)

func TestGoToLua(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	bm, err := zcl.NewBitmap(1, nil, 5)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		val  any
		want lua.LValueType
	}{
		{"nil", nil, lua.LTNil},
		{"bool", true, lua.LTBool},
		{"string", "hello", lua.LTString},
		{"octets", []byte{1, 2}, lua.LTString},
		{"int", 42, lua.LTNumber},
		{"uint16", uint16(1024), lua.LTNumber},
		{"int64", int64(-99), lua.LTNumber},
		{"float32", float32(1.5), lua.LTNumber},
		{"bitmap", bm, lua.LTNumber},
		{"status", zcl.StatusFailure, lua.LTString},
		{"args", zcl.Args{"a": 1}, lua.LTTable},
		{"map", map[string]any{"a": 1}, lua.LTTable},
		{"slice", []any{1, 2, 3}, lua.LTTable},
		{"names", []string{"a"}, lua.LTTable},
		{"unknown", struct{}{}, lua.LTString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := goToLua(L, tt.val).Type(); got != tt.want {
				t.Errorf("goToLua(%v) type = %v, want %v", tt.val, got, tt.want)
			}
		})
	}

	if v := goToLua(L, bm); v != lua.LNumber(5) {
		t.Errorf("bitmap = %v, want 5", v)
	}
	if v := goToLua(L, zcl.StatusFailure); v != lua.LString("FAILURE") {
		t.Errorf("status = %v", v)
	}
}

func TestLuaToGo(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoString(`
num = 7
frac = 0.5
neg = -3
list = {1, "two", true}
rec = {level = 10, name = "x", inner = {1, 2}}
empty = {}
`); err != nil {
		t.Fatal(err)
	}

	if v := luaToGo(L.GetGlobal("num")); v != int64(7) {
		t.Errorf("num = %v (%T)", v, v)
	}
	if v := luaToGo(L.GetGlobal("frac")); v != 0.5 {
		t.Errorf("frac = %v (%T)", v, v)
	}
	if v := luaToGo(L.GetGlobal("neg")); v != int64(-3) {
		t.Errorf("neg = %v (%T)", v, v)
	}
	if v := luaToGo(L.GetGlobal("missing")); v != nil {
		t.Errorf("missing = %v", v)
	}

	list, ok := luaToGo(L.GetGlobal("list")).([]any)
	if !ok || len(list) != 3 || list[0] != int64(1) || list[1] != "two" || list[2] != true {
		t.Errorf("list = %#v", list)
	}

	rec, ok := luaToGo(L.GetGlobal("rec")).(zcl.Args)
	if !ok || rec["level"] != int64(10) || rec["name"] != "x" {
		t.Fatalf("rec = %#v", rec)
	}
	if inner, ok := rec["inner"].([]any); !ok || len(inner) != 2 {
		t.Errorf("inner = %#v", rec["inner"])
	}

	if v, ok := luaToGo(L.GetGlobal("empty")).(zcl.Args); !ok || len(v) != 0 {
		t.Errorf("empty = %#v", v)
	}
}

func TestTableArgs(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	if tableArgs(lua.LNil) != nil {
		t.Error("nil table gave args")
	}
	seq := L.NewTable()
	seq.Append(lua.LNumber(1))
	if tableArgs(seq) != nil {
		t.Error("sequence gave args")
	}
	rec := L.NewTable()
	rec.RawSetString("level", lua.LNumber(3))
	if args := tableArgs(rec); args["level"] != int64(3) {
		t.Errorf("args = %v", args)
	}
}

func TestStringList(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	tbl := L.NewTable()
	tbl.Append(lua.LString("onOff"))
	tbl.Append(lua.LNumber(3))
	tbl.Append(lua.LString("level"))
	got := stringList(tbl)
	if len(got) != 2 || got[0] != "onOff" || got[1] != "level" {
		t.Errorf("stringList = %q", got)
	}
}
