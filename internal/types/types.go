package types

import "fmt"

// Type is a wire type tag of a statement parameter.
// The set is closed: every builder declares one of these for its typed NULL.
type Type uint8

const (
	Null = Type(iota)
	Bool
	Int8
	Int16
	Int32
	Int64
	Float
	Double
	Numeric
	Text
	Char
	Bytes
	Timestamp
	Date
	Time
	UUID
	Interval
	Other
)

var names = [...]string{
	Null:      "NULL",
	Bool:      "BOOLEAN",
	Int8:      "TINYINT",
	Int16:     "SMALLINT",
	Int32:     "INTEGER",
	Int64:     "BIGINT",
	Float:     "REAL",
	Double:    "DOUBLE PRECISION",
	Numeric:   "NUMERIC",
	Text:      "VARCHAR",
	Char:      "CHAR",
	Bytes:     "BYTEA",
	Timestamp: "TIMESTAMP",
	Date:      "DATE",
	Time:      "TIME",
	UUID:      "UUID",
	Interval:  "INTERVAL",
	Other:     "OTHER",
}

// postgres type oids from pg_type.dat
var oids = [...]uint32{
	Null:      0,
	Bool:      16,
	Int8:      21,
	Int16:     21,
	Int32:     23,
	Int64:     20,
	Float:     700,
	Double:    701,
	Numeric:   1700,
	Text:      1043,
	Char:      1042,
	Bytes:     17,
	Timestamp: 1114,
	Date:      1082,
	Time:      1083,
	UUID:      2950,
	Interval:  1186,
	Other:     0,
}

func (t Type) String() string {
	if int(t) < len(names) {
		return names[t]
	}

	return fmt.Sprintf("Type(%d)", uint8(t))
}

// OID returns postgres object identifier of the type. Zero means "let the server infer".
func (t Type) OID() uint32 {
	if int(t) < len(oids) {
		return oids[t]
	}

	return 0
}
