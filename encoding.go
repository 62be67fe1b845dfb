package bigfrac

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText implements the [encoding.TextMarshaler] interface.
// The output is the same as that of String.
func (x Rat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The accepted input is the same as that of Parse.
func (x *Rat) UnmarshalText(text []byte) error {
	y, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", x, err)
	}
	*x = y
	return nil
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are parsed with Parse, integers are taken as is,
// and floats are converted exactly with ExactFloat64.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (x *Rat) Scan(value any) error {
	var y Rat
	var err error
	switch value := value.(type) {
	case string:
		y, err = Parse(value)
	case []byte:
		y, err = Parse(string(value))
	case int64:
		y = FromInt(value)
	case float64:
		y, err = ExactFloat64(value)
	default:
		err = fmt.Errorf("%w: unsupported source type %T", ErrFmtInvalid, value)
	}
	if err != nil {
		return fmt.Errorf("converting to %T: %w", x, err)
	}
	*x = y
	return nil
}

// Value implements the [driver.Valuer] interface.
// The value is stored as the string returned by String.
func (x Rat) Value() (driver.Value, error) {
	return x.String(), nil
}
