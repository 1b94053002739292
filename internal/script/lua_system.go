//go:build !no_lua

package script

import (
	"time"

	lua "github.com/yuin/gopher-lua"
)

// now is replaced in tests.
var now = time.Now

// registerSystemModule registers the `system` global table in a Lua state.
func registerSystemModule(L *lua.LState, vm *scriptVM) {
	mod := L.NewTable()
	mod.RawSetString("datetime", L.NewFunction(systemDatetime))
	mod.RawSetString("time_between", L.NewFunction(systemTimeBetween))
	mod.RawSetString("log", L.NewFunction(func(L *lua.LState) int {
		vm.logf(L.CheckString(1), L.CheckString(2))
		return 0
	}))
	L.SetGlobal("system", mod)
}

var datetimeComponents = map[string]func(time.Time) lua.LValue{
	"hour":      func(t time.Time) lua.LValue { return lua.LNumber(t.Hour()) },
	"minute":    func(t time.Time) lua.LValue { return lua.LNumber(t.Minute()) },
	"second":    func(t time.Time) lua.LValue { return lua.LNumber(t.Second()) },
	"weekday":   func(t time.Time) lua.LValue { return lua.LNumber(t.Weekday()) },
	"day":       func(t time.Time) lua.LValue { return lua.LNumber(t.Day()) },
	"month":     func(t time.Time) lua.LValue { return lua.LNumber(t.Month()) },
	"year":      func(t time.Time) lua.LValue { return lua.LNumber(t.Year()) },
	"timestamp": func(t time.Time) lua.LValue { return lua.LNumber(t.Unix()) },
	"time_str":  func(t time.Time) lua.LValue { return lua.LString(t.Format(time.TimeOnly)) },
	"date_str":  func(t time.Time) lua.LValue { return lua.LString(t.Format(time.DateOnly)) },
}

// system.datetime(component)
func systemDatetime(L *lua.LState) int {
	name := L.CheckString(1)
	get, ok := datetimeComponents[name]
	if !ok {
		L.ArgError(1, "unknown component: "+name)
		return 0
	}
	L.Push(get(now()))
	return 1
}

// system.time_between(from_hour, to_hour) checks the current hour against
// a range that may wrap past midnight.
func systemTimeBetween(L *lua.LState) int {
	from, to, h := L.CheckInt(1), L.CheckInt(2), now().Hour()
	in := h >= from && h < to
	if from > to {
		in = h >= from || h < to
	}
	L.Push(lua.LBool(in))
	return 1
}
