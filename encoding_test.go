package bigfrac_test

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/kbolino/bigfrac"
)

func TestRat_Interfaces(t *testing.T) {
	var x any = bigfrac.Rat{}
	if _, ok := x.(fmt.Stringer); !ok {
		t.Errorf("%T does not implement fmt.Stringer", x)
	}
	if _, ok := x.(encoding.TextMarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", x)
	}
	if _, ok := x.(driver.Valuer); !ok {
		t.Errorf("%T does not implement driver.Valuer", x)
	}
	x = &bigfrac.Rat{}
	if _, ok := x.(encoding.TextUnmarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextUnmarshaler", x)
	}
	if _, ok := x.(sql.Scanner); !ok {
		t.Errorf("%T does not implement sql.Scanner", x)
	}
}

func TestRat_JSON(t *testing.T) {
	type payload struct {
		Ratio bigfrac.Rat `json:"ratio"`
	}
	cases := []struct {
		Rat  bigfrac.Rat
		JSON string
	}{
		{New(0, 1), `{"ratio":"0"}`},
		{New(-6, 8), `{"ratio":"-3/4"}`},
		{New(7, 1), `{"ratio":"7"}`},
	}
	for _, c := range cases {
		t.Run(c.Rat.String(), func(t *testing.T) {
			b, err := json.Marshal(payload{c.Rat})
			if err != nil {
				t.Fatalf("got unexpected error %v", err)
			}
			if string(b) != c.JSON {
				t.Errorf("got %s, want %s", b, c.JSON)
			}
			var p payload
			if err := json.Unmarshal(b, &p); err != nil {
				t.Fatalf("got unexpected error %v", err)
			}
			checkRat(t, p.Ratio, c.Rat)
		})
	}
}

func TestRat_UnmarshalText_error(t *testing.T) {
	x := New(1, 2)
	cases := []struct {
		Text string
		Err  error
	}{
		{"1/0", bigfrac.ErrDenZero},
		{"one half", bigfrac.ErrFmtInvalid},
	}
	for _, c := range cases {
		if err := x.UnmarshalText([]byte(c.Text)); !errors.Is(err, c.Err) {
			t.Errorf("%q: got error %v, want %v", c.Text, err, c.Err)
		}
	}
	checkRat(t, x, New(1, 2))
}

func TestRat_Scan(t *testing.T) {
	cases := []struct {
		Value any
		Rat   bigfrac.Rat
		Err   error
	}{
		{"3/6", New(1, 2), nil},
		{[]byte("-4"), New(-4, 1), nil},
		{int64(12), New(12, 1), nil},
		{0.375, New(3, 8), nil},
		{"1/0", Zero, bigfrac.ErrDenZero},
		{"x", Zero, bigfrac.ErrFmtInvalid},
		{nil, Zero, bigfrac.ErrFmtInvalid},
		{true, Zero, bigfrac.ErrFmtInvalid},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v", c.Value), func(t *testing.T) {
			x := New(5, 7)
			err := x.Scan(c.Value)
			if !errors.Is(err, c.Err) {
				t.Fatalf("got error %v, want %v", err, c.Err)
			}
			if c.Err == nil {
				checkRat(t, x, c.Rat)
			} else {
				checkRat(t, x, New(5, 7))
			}
		})
	}
}

func TestRat_Value(t *testing.T) {
	v, err := New(-10, 4).Value()
	if err != nil {
		t.Fatalf("got unexpected error %v", err)
	}
	if v != "-5/2" {
		t.Errorf("got %v, want -5/2", v)
	}
}
