//go:build !no_lua

package script

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"

	"zigbee-go-zcl/internal/zcl"
)

// goToLua converts a decoded ZCL value to a Lua value. Bitmaps become
// numbers and octet strings become Lua strings.
func goToLua(L *lua.LState, v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case string:
		return lua.LString(val)
	case []byte:
		return lua.LString(string(val))
	case int:
		return lua.LNumber(val)
	case int8:
		return lua.LNumber(val)
	case int16:
		return lua.LNumber(val)
	case int32:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case uint:
		return lua.LNumber(val)
	case uint8:
		return lua.LNumber(val)
	case uint16:
		return lua.LNumber(val)
	case uint32:
		return lua.LNumber(val)
	case uint64:
		return lua.LNumber(val)
	case float32:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case zcl.Status:
		return lua.LString(val.String())
	case *zcl.Bitmap:
		return lua.LNumber(val.Uint64())
	case zcl.Args:
		return mapToLua(L, val)
	case map[string]any:
		return mapToLua(L, val)
	case []any:
		t := L.NewTable()
		for i, vv := range val {
			t.RawSetInt(i+1, goToLua(L, vv))
		}
		return t
	case []string:
		t := L.NewTable()
		for i, s := range val {
			t.RawSetInt(i+1, lua.LString(s))
		}
		return t
	default:
		return lua.LString(fmt.Sprintf("%v", val))
	}
}

func mapToLua(L *lua.LState, m map[string]any) *lua.LTable {
	t := L.NewTable()
	for k, v := range m {
		t.RawSetString(k, goToLua(L, v))
	}
	return t
}

// luaToGo converts a Lua value to the forms the zcl encoders accept.
// Integral numbers become int64, other numbers float64. A table with only
// sequence keys becomes []any, any other table zcl.Args.
func luaToGo(v lua.LValue) any {
	switch val := v.(type) {
	case *lua.LNilType:
		return nil
	case lua.LBool:
		return bool(val)
	case lua.LString:
		return string(val)
	case lua.LNumber:
		f := float64(val)
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	case *lua.LTable:
		return tableToGo(val)
	}
	return nil
}

func tableToGo(t *lua.LTable) any {
	n := t.Len()
	count := 0
	t.ForEach(func(lua.LValue, lua.LValue) { count++ })
	if n > 0 && n == count {
		out := make([]any, n)
		for i := 1; i <= n; i++ {
			out[i-1] = luaToGo(t.RawGetInt(i))
		}
		return out
	}
	out := zcl.Args{}
	t.ForEach(func(k, v lua.LValue) {
		if s, ok := k.(lua.LString); ok {
			out[string(s)] = luaToGo(v)
		}
	})
	return out
}

// tableArgs converts an optional Lua table argument to command args.
func tableArgs(v lua.LValue) zcl.Args {
	t, ok := v.(*lua.LTable)
	if !ok {
		return nil
	}
	if args, ok := tableToGo(t).(zcl.Args); ok {
		return args
	}
	return nil
}

// stringList reads a Lua sequence of strings.
func stringList(t *lua.LTable) []string {
	var out []string
	for i := 1; i <= t.Len(); i++ {
		if s, ok := t.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}
