package statefulresult

import (
	"maps"
	"net/http"
)

// Common status codes worth naming at call sites.
const (
	CodeOK          = http.StatusOK
	CodeCreated     = http.StatusCreated
	CodeNoContent   = http.StatusNoContent
	CodeMultiStatus = http.StatusMultiStatus
	CodeNotModified = http.StatusNotModified

	CodeBadRequest           = http.StatusBadRequest
	CodeUnauthorized         = http.StatusUnauthorized
	CodeForbidden            = http.StatusForbidden
	CodeNotFound             = http.StatusNotFound
	CodeConflict             = http.StatusConflict
	CodeUnsupportedMediaType = http.StatusUnsupportedMediaType

	CodeInternalServerError = http.StatusInternalServerError
	CodeNotImplemented      = http.StatusNotImplemented

	// Not registered; nginx convention for a client that went away.
	CodeClientClosedRequest = 499
)

var commonCodes = map[string]int{
	"OK":           CodeOK,
	"CREATED":      CodeCreated,
	"NO_CONTENT":   CodeNoContent,
	"MULTI_STATUS": CodeMultiStatus,
	"NOT_MODIFIED": CodeNotModified,

	"BAD_REQUEST":            CodeBadRequest,
	"UNAUTHORIZED":           CodeUnauthorized,
	"FORBIDDEN":              CodeForbidden,
	"NOT_FOUND":              CodeNotFound,
	"CONFLICT":               CodeConflict,
	"UNSUPPORTED_MEDIA_TYPE": CodeUnsupportedMediaType,

	"INTERNAL_SERVER_ERROR": CodeInternalServerError,
	"NOT_IMPLEMENTED":       CodeNotImplemented,
}

// statusCodes holds every registered HTTP status code and its reason phrase.
// Built once at init and never written afterwards.
var statusCodes = func() map[int]string {
	m := make(map[int]string)
	for code := 100; code < 600; code++ {
		if text := http.StatusText(code); text != "" {
			m[code] = text
		}
	}
	return m
}()

// LookupStatusText returns the reason phrase for code and whether the
// code is registered.
func LookupStatusText(code int) (string, bool) {
	text, ok := statusCodes[code]
	return text, ok
}

// StatusText returns the reason phrase for code, or "" if the code is
// not registered.
func StatusText(code int) string {
	return statusCodes[code]
}

// Codes returns a copy of the full status code table.
func Codes() map[int]string {
	return maps.Clone(statusCodes)
}

// CommonCode returns the code for a mnemonic name such as "NOT_FOUND".
func CommonCode(name string) (int, bool) {
	code, ok := commonCodes[name]
	return code, ok
}

// CommonCodes returns a copy of the mnemonic name to code table.
func CommonCodes() map[string]int {
	return maps.Clone(commonCodes)
}
