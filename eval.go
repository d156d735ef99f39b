package RidDB

import (
	"context"

	"github.com/Kirov7/RidDB/data"
	"github.com/Kirov7/RidDB/public"
	pool "github.com/jolestar/go-commons-pool/v2"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// Eval run a lua script against the engine and convert the value it returns.
//
// Scripts see find(id), range(lo, hi), prefix(p), insert(id, first, last),
// delete(id) and comparisons(). Records are tables with id, first and last.
func (e *Engine) Eval(ctx context.Context, script string) (*Cmd, error) {
	if e.luaPool == nil {
		return nil, public.ErrLuaInterpreterDisabled
	}
	obj, err := e.luaPool.BorrowObject(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "borrow lua state")
	}
	L := obj.(*lua.LState)
	defer e.luaPool.ReturnObject(ctx, L)

	if err := L.DoString(script); err != nil {
		return nil, errors.WithMessage(err, "eval lua script")
	}
	if L.GetTop() == 0 {
		return &Cmd{}, nil
	}
	resultValue := L.Get(-1)
	L.Pop(1)
	return &Cmd{Value: fromLua(resultValue)}, nil
}

func (e *Engine) initLuaPool(size int) {
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = size
	config.MaxIdle = size
	e.luaPool = pool.NewObjectPool(context.Background(), &luaStateFactory{engine: e}, config)
}

type luaStateFactory struct {
	engine *Engine
}

func (f *luaStateFactory) MakeObject(ctx context.Context) (*pool.PooledObject, error) {
	return pool.NewPooledObject(f.engine.newLuaState()), nil
}

func (f *luaStateFactory) DestroyObject(ctx context.Context, object *pool.PooledObject) error {
	L, ok := object.Object.(*lua.LState)
	if !ok {
		return errors.New("type mismatch")
	}
	L.Close()
	return nil
}

func (f *luaStateFactory) ValidateObject(ctx context.Context, object *pool.PooledObject) bool {
	_, ok := object.Object.(*lua.LState)
	return ok
}

func (f *luaStateFactory) ActivateObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

func (f *luaStateFactory) PassivateObject(ctx context.Context, object *pool.PooledObject) error {
	// drop whatever the last script left on the stack
	object.Object.(*lua.LState).SetTop(0)
	return nil
}

func (e *Engine) newLuaState() *lua.LState {
	L := lua.NewState()
	L.SetGlobal("find", L.NewFunction(func(L *lua.LState) int {
		rec, _, ok := e.FindById(L.CheckInt(1))
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(recordTable(L, rec))
		return 1
	}))

	L.SetGlobal("range", L.NewFunction(func(L *lua.LState) int {
		records, _ := e.RangeById(L.CheckInt(1), L.CheckInt(2))
		L.Push(recordsTable(L, records))
		return 1
	}))

	L.SetGlobal("prefix", L.NewFunction(func(L *lua.LState) int {
		records, _ := e.PrefixByLast(L.CheckString(1))
		L.Push(recordsTable(L, records))
		return 1
	}))

	L.SetGlobal("insert", L.NewFunction(func(L *lua.LState) int {
		rec := data.Record{Id: L.CheckInt(1), First: L.CheckString(2), Last: L.CheckString(3)}
		id, err := e.InsertRecord(rec)
		if err != nil {
			L.RaiseError("insert %d: %v", rec.Id, err)
			return 0
		}
		L.Push(lua.LNumber(id))
		return 1
	}))

	L.SetGlobal("delete", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(e.DeleteById(L.CheckInt(1))))
		return 1
	}))

	L.SetGlobal("comparisons", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(e.lastComparisons))
		return 1
	}))
	return L
}

func recordTable(L *lua.LState, rec data.Record) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("id", lua.LNumber(rec.Id))
	t.RawSetString("first", lua.LString(rec.First))
	t.RawSetString("last", lua.LString(rec.Last))
	return t
}

func recordsTable(L *lua.LState, records []data.Record) *lua.LTable {
	t := L.CreateTable(len(records), 0)
	for _, rec := range records {
		t.Append(recordTable(L, rec))
	}
	return t
}

func fromLua(value lua.LValue) interface{} {
	switch v := value.(type) {
	case lua.LNumber:
		if float64(v) == float64(int64(v)) {
			return int64(v)
		}
		return float64(v)
	case lua.LString:
		return string(v)
	case lua.LBool:
		return bool(v)
	case *lua.LTable:
		if rec, ok := toRecord(v); ok {
			return rec
		}
		arr := make([]interface{}, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			arr = append(arr, fromLua(v.RawGetInt(i)))
		}
		return arr
	default:
		return nil
	}
}

func toRecord(t *lua.LTable) (data.Record, bool) {
	id, ok := t.RawGetString("id").(lua.LNumber)
	if !ok {
		return data.Record{}, false
	}
	first, ok := t.RawGetString("first").(lua.LString)
	if !ok {
		return data.Record{}, false
	}
	last, ok := t.RawGetString("last").(lua.LString)
	if !ok {
		return data.Record{}, false
	}
	return data.Record{Id: int(id), First: string(first), Last: string(last)}, true
}

type Cmd struct {
	Value interface{}
}

func (r *Cmd) AsInt() (int, error) {
	switch v := r.Value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, errors.Errorf("result %T is not an int", r.Value)
	}
}

func (r *Cmd) AsString() (string, error) {
	return resultAs[string](r, "a string")
}

func (r *Cmd) AsBool() (bool, error) {
	return resultAs[bool](r, "a bool")
}

// AsArray a lua sequence that is not made of records
func (r *Cmd) AsArray() ([]interface{}, error) {
	return resultAs[[]interface{}](r, "an array")
}

func resultAs[T any](r *Cmd, kind string) (T, error) {
	v, ok := r.Value.(T)
	if !ok {
		var zero T
		return zero, errors.Errorf("result %T is not %s", r.Value, kind)
	}
	return v, nil
}

// AsRecords accept a single record or an array of records
func (r *Cmd) AsRecords() ([]data.Record, error) {
	switch v := r.Value.(type) {
	case data.Record:
		return []data.Record{v}, nil
	case []interface{}:
		records := make([]data.Record, 0, len(v))
		for _, elem := range v {
			rec, ok := elem.(data.Record)
			if !ok {
				return nil, errors.Errorf("result is not an array of records")
			}
			records = append(records, rec)
		}
		return records, nil
	default:
		return nil, errors.Errorf("result is not a record")
	}
}
