package statefulresult

// Field names one entry of a Result's context.
type Field string

const (
	FieldError   Field = "error"
	FieldData    Field = "data"
	FieldCode    Field = "code"
	FieldResult  Field = "result"
	FieldMessage Field = "message"

	// FieldStatus is only meaningful to SendResponse.
	FieldStatus Field = "status"
)

// Predefined projections. Treat them as read-only.
var (
	DefaultFields = []Field{FieldError, FieldData, FieldCode, FieldResult, FieldMessage}

	CodeData                   = []Field{FieldCode, FieldData}
	ErrorCodeData              = []Field{FieldError, FieldCode, FieldData}
	ErrorData                  = []Field{FieldError, FieldData}
	ErrorCodeDataMessage       = []Field{FieldError, FieldCode, FieldData, FieldMessage}
	ErrorDataCodeMessage       = []Field{FieldError, FieldData, FieldCode, FieldMessage}
	ErrorDataCodeResultMessage = []Field{FieldError, FieldData, FieldCode, FieldResult, FieldMessage}
)

// Context is the named view of a Result.
// Result points back at the Result the context was taken from.
type Context[T any] struct {
	Error   error
	Data    T
	Code    int
	Result  *Result[T]
	Message string
}

// Context returns the named view of r.
func (r *Result[T]) Context() Context[T] {
	return Context[T]{
		Error:   r.err,
		Data:    r.data,
		Code:    r.code,
		Result:  r,
		Message: r.message,
	}
}

// ContextOrErr returns the context of r, or the contained error unchanged
// if r is a failure with an attached error. A failure without an error
// returns its context.
func (r *Result[T]) ContextOrErr() (Context[T], error) {
	if !r.ok() {
		return Context[T]{}, r.err
	}
	return r.Context(), nil
}

// MustContext is like ContextOrErr but panics with the contained error.
func (r *Result[T]) MustContext() Context[T] {
	c, err := r.ContextOrErr()
	if err != nil {
		panic(err)
	}
	return c
}

// lookup resolves a context field. FieldResult yields r itself.
func (r *Result[T]) lookup(f Field) (any, bool) {
	switch f {
	case FieldError:
		return r.err, true
	case FieldData:
		return r.data, true
	case FieldCode:
		return r.code, true
	case FieldResult:
		return r, true
	case FieldMessage:
		return r.message, true
	}
	return nil, false
}

// Get returns the values of keys in order. Unknown keys yield nil at
// their position. Called without keys it returns DefaultFields:
// error, data, code, result, message.
func (r *Result[T]) Get(keys ...Field) []any {
	if keys == nil {
		keys = DefaultFields
	}
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i], _ = r.lookup(k)
	}
	return out
}

// GetOrErr is Get for results that are successful or carry no error.
// Otherwise it returns the contained error unchanged.
func (r *Result[T]) GetOrErr(keys ...Field) ([]any, error) {
	if !r.ok() {
		return nil, r.err
	}
	return r.Get(keys...), nil
}

// MustGet is like GetOrErr but panics with the contained error.
func (r *Result[T]) MustGet(keys ...Field) []any {
	v, err := r.GetOrErr(keys...)
	if err != nil {
		panic(err)
	}
	return v
}
