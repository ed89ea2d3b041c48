package webex

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
)

// RequestDescriptor is a fully built request, ready for a Transport. Path is
// relative to the transport's base URL unless it is an absolute URL.
type RequestDescriptor struct {
	Method  string
	Path    string
	Query   url.Values
	Body    []byte
	Headers map[string]string
}

// URL renders Path and Query as they will appear on the wire.
func (r *RequestDescriptor) URL() string {
	if len(r.Query) == 0 {
		return r.Path
	}

	sep := "?"
	if strings.Contains(r.Path, "?") {
		sep = "&"
	}

	return r.Path + sep + r.Query.Encode()
}

// PathParams maps placeholder names in a path template to their values.
type PathParams map[string]string

// BuildRequest substitutes pathParams into pathTemplate, renders the present
// query parameters and encodes body with wire names. Body may be nil, a model,
// a slice of models, a map or a json.RawMessage.
func BuildRequest(method, pathTemplate string, pathParams PathParams, query *QueryParams, body any) (*RequestDescriptor, error) {
	if !validMethod(method) {
		return nil, &ConfigurationError{Param: method, Reason: "unsupported HTTP method", Err: ErrInvalidMethod}
	}

	path, err := ExpandPath(pathTemplate, pathParams)
	if err != nil {
		return nil, err
	}

	encoded, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	return &RequestDescriptor{
		Method: method,
		Path:   path,
		Query:  query.ToValues(),
		Body:   encoded,
	}, nil
}

// ExpandPath replaces every {name} in template with the escaped value from
// params. A placeholder without a non-empty value is a ConfigurationError.
func ExpandPath(template string, params PathParams) (string, error) {
	return expand(template, func(name string, _ int) (string, bool) {
		value, ok := params[name]

		return value, ok && value != ""
	})
}

// ExpandPathPositional fills placeholders in order of appearance.
func ExpandPathPositional(template string, values ...string) (string, error) {
	return expand(template, func(_ string, index int) (string, bool) {
		if index >= len(values) || values[index] == "" {
			return "", false
		}

		return values[index], true
	})
}

// Placeholders lists the placeholder names of template in order.
func Placeholders(template string) []string {
	var names []string

	_, _ = expand(template, func(name string, _ int) (string, bool) {
		names = append(names, name)

		return name, true
	})

	return names
}

func expand(template string, lookup func(name string, index int) (string, bool)) (string, error) {
	var builder strings.Builder

	index := 0
	rest := template

	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			builder.WriteString(rest)

			break
		}

		closeIdx := strings.IndexByte(rest[open:], '}')
		if closeIdx < 0 {
			return "", &ConfigurationError{Param: template, Reason: "unclosed placeholder in path", Err: ErrInvalidPath}
		}

		name := rest[open+1 : open+closeIdx]
		if name == "" {
			return "", &ConfigurationError{Param: template, Reason: "empty placeholder in path", Err: ErrInvalidPath}
		}

		value, ok := lookup(name, index)
		if !ok {
			return "", &ConfigurationError{Param: name, Reason: "missing required path parameter", Err: ErrMissingPathParam}
		}

		builder.WriteString(rest[:open])
		builder.WriteString(url.PathEscape(value))

		rest = rest[open+closeIdx+1:]
		index++
	}

	return builder.String(), nil
}

// isNilBody reports whether body is absent: untyped nil or a nil pointer
// such as (*CallQueueDetail)(nil).
func isNilBody(body any) bool {
	if body == nil {
		return true
	}

	rv := reflect.ValueOf(body)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func encodeBody(body any) ([]byte, error) {
	if isNilBody(body) {
		return nil, nil
	}

	if raw, ok := body.(json.RawMessage); ok {
		if !json.Valid(raw) {
			return nil, &ConfigurationError{Reason: "raw body is not valid JSON", Err: ErrInvalidBody}
		}

		return raw, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("encoding body: %v", err), Err: ErrInvalidBody}
	}

	return data, nil
}

func validMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead:
		return true
	}

	return false
}
