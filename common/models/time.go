package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

const (
	timestampStorageFormat = "2006-01-02 15:04:05.999999-07:00"
)

type Time struct {
	time.Time
}

func NewTime(t time.Time) Time {
	// Postgres only stores microsecond precision, so round before storing to get back exactly what was written.
	return Time{Time: t.UTC().Round(time.Microsecond)}
}

func (s *Time) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	// Postgres hands back time.Time; sqlite may hand back text.
	switch t := src.(type) {
	case time.Time:
		*s = NewTime(t)
	case string:
		return s.parse(t)
	case []byte:
		return s.parse(string(t))
	default:
		return fmt.Errorf("unsupported type: %[1]T (%[1]v)", src)
	}
	return nil
}

func (s *Time) parse(str string) error {
	parsedTime, err := time.Parse(timestampStorageFormat, str)
	if err != nil {
		return errors.Wrap(err, "error parsing time")
	}
	*s = Time{Time: parsedTime.UTC()}
	return nil
}

// Value converts a time into a format that can be passed to the database.
func (s Time) Value() (driver.Value, error) {
	return s.Format(timestampStorageFormat), nil
}
