package eval

import "github.com/AksoEo/akso-script-go/internal/core/adt"

// Local aliases for the adt value types, following the pattern of
// cue-lang-cue's cue/alias.go.
type (
	Value     = adt.Value
	Null      = adt.Null
	Bool      = adt.Bool
	Num       = adt.Num
	Str       = adt.Str
	Array     = adt.Array
	Date      = adt.Date
	Timestamp = adt.Timestamp
	Callable  = adt.Callable
	Env       = adt.Env
)
