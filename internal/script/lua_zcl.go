//go:build !no_lua

package script

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/zcl"
)

// registerZCLModule registers the `zcl` global table in a Lua state.
func registerZCLModule(L *lua.LState, vm *scriptVM, e *Engine) {
	mod := L.NewTable()
	mod.RawSetString("endpoint", lua.LNumber(vm.endpoint))
	if vm.bound != nil {
		mod.RawSetString("cluster", lua.LString(vm.bound.Def().Name))
	}

	fns := map[string]lua.LGFunction{
		"handle":     func(L *lua.LState) int { return zclHandle(L, vm) },
		"attribute":  func(L *lua.LState) int { return zclAttribute(L, vm) },
		"value":      func(L *lua.LState) int { return zclValue(L, vm) },
		"reportable": func(L *lua.LState) int { return zclReportable(L, vm) },
		"on":         func(L *lua.LState) int { return zclOn(L, vm) },
		"invoke":     func(L *lua.LState) int { return zclInvoke(L, vm, e) },
		"read":       func(L *lua.LState) int { return zclRead(L, vm, e) },
		"write":      func(L *lua.LState) int { return zclWrite(L, vm, e) },
		"after":      func(L *lua.LState) int { return zclAfter(L, vm, e) },
		"log": func(L *lua.LState) int {
			vm.logf("info", L.CheckString(1))
			return 0
		},
	}
	for name, fn := range fns {
		mod.RawSetString(name, L.NewFunction(fn))
	}
	L.SetGlobal("zcl", mod)
}

func checkBound(L *lua.LState, vm *scriptVM) *node.Bound {
	if vm.bound == nil {
		L.RaiseError("%v", ErrNoBinding)
	}
	return vm.bound
}

// zcl.handle(command, function(args, meta) ... end)
//
// The function may return a table of response args, or nil and an error
// message to fail the command.
func zclHandle(L *lua.LState, vm *scriptVM) int {
	b := checkBound(L, vm)
	name := L.CheckString(1)
	fn := L.CheckFunction(2)
	if _, ok := b.Def().Command(name); !ok {
		L.ArgError(1, fmt.Sprintf("unknown command %s.%s", b.Def().Name, name))
		return 0
	}
	if err := vm.apply(func() error { return b.Handle(name, vm.handler(name, fn)) }); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (vm *scriptVM) handler(name string, fn *lua.LFunction) node.HandlerFunc {
	return func(ctx context.Context, req *node.Request) (zcl.Args, error) {
		v, err := vm.call(ctx, func(L *lua.LState) (any, error) {
			if err := L.CallByParam(lua.P{Fn: fn, NRet: 2, Protect: true}, goToLua(L, req.Args), metaTable(L, req.Meta)); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrHandler, name, err)
			}
			ret, msg := L.Get(-2), L.Get(-1)
			L.Pop(2)
			if msg != lua.LNil {
				return nil, fmt.Errorf("%w: %s: %s", ErrHandler, name, msg.String())
			}
			return tableArgs(ret), nil
		})
		args, _ := v.(zcl.Args)
		return args, err
	}
}

// zcl.attribute(name, {get = function() ... end, set = function(v) ... end, value = v})
//
// A setter may return false or an error message to reject the write.
func zclAttribute(L *lua.LState, vm *scriptVM) int {
	b := checkBound(L, vm)
	name := L.CheckString(1)
	opts := L.CheckTable(2)
	if _, ok := b.Def().Attribute(name); !ok {
		L.ArgError(1, fmt.Sprintf("unknown attribute %s.%s", b.Def().Name, name))
		return 0
	}

	acc := node.Accessor{Value: luaToGo(opts.RawGetString("value"))}
	if get, ok := opts.RawGetString("get").(*lua.LFunction); ok {
		acc.Get = func(ctx context.Context) (any, error) {
			return vm.call(ctx, func(L *lua.LState) (any, error) {
				if err := L.CallByParam(lua.P{Fn: get, NRet: 1, Protect: true}); err != nil {
					return nil, fmt.Errorf("%w: get %s: %v", ErrHandler, name, err)
				}
				v := L.Get(-1)
				L.Pop(1)
				return luaToGo(v), nil
			})
		}
	}
	if set, ok := opts.RawGetString("set").(*lua.LFunction); ok {
		acc.Set = func(ctx context.Context, v any) error {
			_, err := vm.call(ctx, func(L *lua.LState) (any, error) {
				if err := L.CallByParam(lua.P{Fn: set, NRet: 1, Protect: true}, goToLua(L, v)); err != nil {
					return nil, fmt.Errorf("%w: set %s: %v", ErrHandler, name, err)
				}
				ret := L.Get(-1)
				L.Pop(1)
				switch r := ret.(type) {
				case lua.LString:
					return nil, fmt.Errorf("%w: set %s: %s", ErrHandler, name, string(r))
				case lua.LBool:
					if !bool(r) {
						return nil, fmt.Errorf("%w: set %s rejected", ErrHandler, name)
					}
				}
				return nil, nil
			})
			return err
		}
	}
	if err := vm.apply(func() error { return b.SetAccessor(name, acc) }); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// zcl.value(name, v) serves a fixed attribute value.
func zclValue(L *lua.LState, vm *scriptVM) int {
	b := checkBound(L, vm)
	name := L.CheckString(1)
	v := luaToGo(L.CheckAny(2))
	if err := vm.apply(func() error { return b.SetValue(name, v) }); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// zcl.reportable(name, ...)
func zclReportable(L *lua.LState, vm *scriptVM) int {
	b := checkBound(L, vm)
	var names []string
	for i := 1; i <= L.GetTop(); i++ {
		names = append(names, L.CheckString(i))
	}
	vm.apply(func() error {
		b.SetReportable(names...)
		return nil
	})
	return 0
}

// zcl.on(type, [filter], callback)
//
// filter may narrow the events to {endpoint = n, cluster = "name"}.
func zclOn(L *lua.LState, vm *scriptVM) int {
	h := luaEventHandler{eventType: L.CheckString(1)}
	fnArg := 2
	if filter, ok := L.Get(2).(*lua.LTable); ok {
		if v, ok := filter.RawGetString("endpoint").(lua.LNumber); ok {
			h.endpoint = uint8(v)
		}
		if v, ok := filter.RawGetString("cluster").(lua.LString); ok {
			h.cluster = string(v)
		}
		fnArg = 3
	}
	h.fn = L.CheckFunction(fnArg)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if len(vm.handlers) >= maxHandlersPerScript {
		L.RaiseError("too many handlers (max %d)", maxHandlersPerScript)
		return 0
	}
	vm.handlers = append(vm.handlers, h)
	return 0
}

// clusterArg resolves the (endpoint, cluster) arguments to a client cluster.
func clusterArg(L *lua.LState, e *Engine) *node.Cluster {
	epVal := L.CheckInt(1)
	name := L.CheckString(2)
	if epVal < 1 || epVal > 240 {
		L.ArgError(1, "endpoint must be 1-240")
		return nil
	}
	ep, ok := e.node.Endpoint(uint8(epVal))
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown endpoint %d", epVal))
		return nil
	}
	c, ok := ep.Cluster(name)
	if !ok {
		L.ArgError(2, fmt.Sprintf("cluster %s not on endpoint %d", name, epVal))
		return nil
	}
	return c
}

func pushResult(L *lua.LState, v lua.LValue, err error) int {
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(v)
	return 1
}

// zcl.invoke(endpoint, cluster, command, [args]) -> response | nil, err
func zclInvoke(L *lua.LState, vm *scriptVM, e *Engine) int {
	c := clusterArg(L, e)
	cmd := L.CheckString(3)
	res, err := c.Invoke(vm.ctx, cmd, tableArgs(L.Get(4)))
	if err != nil {
		e.logger.Debug("script invoke failed", "script", vm.id, "cluster", c.Name(), "cmd", cmd, "err", err)
	}
	return pushResult(L, goToLua(L, res), err)
}

// zcl.read(endpoint, cluster, {names}) -> values | nil, err
func zclRead(L *lua.LState, vm *scriptVM, e *Engine) int {
	c := clusterArg(L, e)
	names := stringList(L.CheckTable(3))
	res, err := c.ReadAttributes(vm.ctx, names)
	return pushResult(L, goToLua(L, res), err)
}

// zcl.write(endpoint, cluster, {name = value}) -> true | nil, err
func zclWrite(L *lua.LState, vm *scriptVM, e *Engine) int {
	c := clusterArg(L, e)
	values := tableArgs(L.CheckTable(3))
	err := c.WriteAttributes(vm.ctx, values)
	return pushResult(L, lua.LTrue, err)
}

// zcl.after(seconds, callback) runs callback later on the VM.
func zclAfter(L *lua.LState, vm *scriptVM, e *Engine) int {
	seconds := L.CheckNumber(1)
	fn := L.CheckFunction(2)

	go func() {
		timer := time.NewTimer(time.Duration(float64(seconds) * float64(time.Second)))
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-vm.ctx.Done():
			return
		}

		select {
		case vm.commands <- func(L *lua.LState) {
			if err := L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}); err != nil {
				e.logger.Error("after callback error", "script", vm.id, "err", err)
			}
		}:
		default:
			e.logger.Warn("after: command queue full", "script", vm.id)
		}
	}()
	return 0
}
