package database

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// FakeRow is a pgx.Row that copies Values into the Scan destinations in order.
// A nil value leaves the destination at its zero value, the way NULL does.
type FakeRow struct {
	Values []any
	Err    error
}

func (r FakeRow) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assign(r.Values, dest)
}

// FakeRows is a pgx.Rows over a fixed result set.
type FakeRows struct {
	Data    [][]any
	ScanErr error
	IterErr error

	idx    int
	closed bool
}

func (r *FakeRows) Close()                                       { r.closed = true }
func (r *FakeRows) Err() error                                   { return r.IterErr }
func (r *FakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *FakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *FakeRows) RawValues() [][]byte                          { return nil }
func (r *FakeRows) Conn() *pgx.Conn                              { return nil }

func (r *FakeRows) Next() bool {
	if r.closed || r.idx >= len(r.Data) {
		return false
	}
	r.idx++
	return true
}

func (r *FakeRows) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	return assign(r.Data[r.idx-1], dest)
}

// Closed reports whether Close was called.
func (r *FakeRows) Closed() bool { return r.closed }

func assign(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("fake scan: %d values for %d destinations", len(values), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d)
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("fake scan: destination %d is not a pointer", i)
		}
		elem := target.Elem()
		if values[i] == nil {
			elem.Set(reflect.Zero(elem.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		switch {
		case v.Type().AssignableTo(elem.Type()):
			elem.Set(v)
		case elem.Kind() == reflect.Pointer && v.Type().AssignableTo(elem.Type().Elem()):
			p := reflect.New(elem.Type().Elem())
			p.Elem().Set(v)
			elem.Set(p)
		default:
			return fmt.Errorf("fake scan: cannot assign %s to %s", v.Type(), elem.Type())
		}
	}
	return nil
}
