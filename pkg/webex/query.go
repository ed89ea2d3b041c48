package webex

import (
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/wxc/internal/constants"
)

// QueryParams collects optional query parameters keyed by wire name. Absent
// values never reach the query string: Set ignores nil, nil pointers and
// absent or null Optionals, so "absent", "" and "false" stay distinct.
type QueryParams struct {
	values url.Values
}

// NewQueryParams creates an empty parameter set.
func NewQueryParams() *QueryParams {
	return &QueryParams{values: url.Values{}}
}

type optionalQueryValue interface {
	queryValue() (any, bool)
}

// Set records name=value unless value is absent. Slices are comma joined.
func (q *QueryParams) Set(name string, value any) *QueryParams {
	rendered, ok := renderQueryValue(value)
	if !ok {
		return q
	}

	if q.values == nil {
		q.values = url.Values{}
	}

	q.values.Set(name, rendered)

	return q
}

// WithMax sets the page size. Zero or negative leaves it absent.
func (q *QueryParams) WithMax(limit int) *QueryParams {
	if limit <= 0 {
		return q
	}

	return q.Set(constants.MaxPageSizeParam, limit)
}

// WithStart sets the start offset. Zero or negative leaves it absent.
func (q *QueryParams) WithStart(start int) *QueryParams {
	if start <= 0 {
		return q
	}

	return q.Set(constants.StartParam, start)
}

// WithOrgID sets orgId. An empty id is treated as absent.
func (q *QueryParams) WithOrgID(orgID string) *QueryParams {
	if orgID == "" {
		return q
	}

	return q.Set(constants.OrgIDParam, orgID)
}

// Has reports whether name was set.
func (q *QueryParams) Has(name string) bool {
	if q == nil {
		return false
	}

	return q.values.Has(name)
}

// Names returns the wire names that are set, sorted.
func (q *QueryParams) Names() []string {
	if q == nil {
		return nil
	}

	names := make([]string, 0, len(q.values))
	for name := range q.values {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Clone returns an independent copy.
func (q *QueryParams) Clone() *QueryParams {
	clone := NewQueryParams()
	if q == nil {
		return clone
	}

	for name, vals := range q.values {
		clone.values[name] = append([]string(nil), vals...)
	}

	return clone
}

// ToValues converts the parameters to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	for name, vals := range q.values {
		values[name] = append([]string(nil), vals...)
	}

	return values
}

func renderQueryValue(value any) (string, bool) {
	if value == nil {
		return "", false
	}

	if opt, ok := value.(optionalQueryValue); ok {
		inner, present := opt.queryValue()
		if !present {
			return "", false
		}

		return renderQueryValue(inner)
	}

	switch typed := value.(type) {
	case string:
		return typed, true
	case bool:
		return strconv.FormatBool(typed), true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case time.Time:
		return typed.Format(time.RFC3339), true
	case fmt.Stringer:
		return typed.String(), true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}

		return renderQueryValue(rv.Elem().Interface())
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "", false
		}

		parts := make([]string, 0, rv.Len())
		for i := range rv.Len() {
			part, ok := renderQueryValue(rv.Index(i).Interface())
			if ok {
				parts = append(parts, part)
			}
		}

		return strings.Join(parts, ","), true
	default:
		return fmt.Sprint(value), true
	}
}
