package webex

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Endpoint declares one REST operation: where it lives, which query
// parameters it accepts, what body model it takes and what it returns.
type Endpoint struct {
	Name        string   `json:"name"                  yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Method      string   `json:"method"                yaml:"method"`
	Path        string   `json:"path"                  yaml:"path"`
	Query       []string `json:"query,omitempty"       yaml:"query,omitempty"`
	Body        string   `json:"body,omitempty"        yaml:"body,omitempty"`
	Response    Shape    `json:"response"              yaml:"response"`
}

// PathParams lists the placeholder names of the endpoint path.
func (e *Endpoint) PathParams() []string {
	return Placeholders(e.Path)
}

// AcceptsQuery reports whether name is a declared query parameter.
func (e *Endpoint) AcceptsQuery(name string) bool {
	return slices.Contains(e.Query, name)
}

// Build checks the inputs against the declaration and builds the request.
func (e *Endpoint) Build(pathParams PathParams, query *QueryParams, body any) (*RequestDescriptor, error) {
	for _, name := range query.Names() {
		if !e.AcceptsQuery(name) {
			return nil, &ConfigurationError{
				Param:  name,
				Reason: fmt.Sprintf("query parameter not accepted by %s", e.Name),
				Err:    ErrInvalidQueryParam,
			}
		}
	}

	if e.Body == "" && !isNilBody(body) {
		return nil, &ConfigurationError{Param: e.Name, Reason: "endpoint takes no request body", Err: ErrInvalidBody}
	}

	return BuildRequest(e.Method, e.Path, pathParams, query, body)
}

func (e *Endpoint) validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: endpoint without a name", ErrInvalidPath)
	}

	e.Method = strings.ToUpper(e.Method)
	if e.Method == "" {
		e.Method = http.MethodGet
	}

	if !validMethod(e.Method) {
		return fmt.Errorf("endpoint %s: %w: %q", e.Name, ErrInvalidMethod, e.Method)
	}

	if !strings.HasPrefix(e.Path, "/") {
		return fmt.Errorf("endpoint %s: %w: path %q must start with /", e.Name, ErrInvalidPath, e.Path)
	}

	_, err := expand(e.Path, func(name string, _ int) (string, bool) { return name, true })
	if err != nil {
		return fmt.Errorf("endpoint %s: %w", e.Name, err)
	}

	err = e.Response.Validate()
	if err != nil {
		return fmt.Errorf("endpoint %s: %w", e.Name, err)
	}

	return nil
}

// Catalog is a read-only set of endpoints keyed by name.
type Catalog struct {
	endpoints map[string]*Endpoint
	names     []string
}

type catalogDocument struct {
	Endpoints []*Endpoint `yaml:"endpoints"`
}

// LoadCatalog parses a YAML catalog. Unknown keys, duplicate names and
// invalid response shapes are rejected.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc catalogDocument

	err := decoder.Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing endpoint catalog: %w", err)
	}

	catalog := &Catalog{
		endpoints: make(map[string]*Endpoint, len(doc.Endpoints)),
		names:     make([]string, 0, len(doc.Endpoints)),
	}

	for _, endpoint := range doc.Endpoints {
		if endpoint == nil {
			continue
		}

		err = endpoint.validate()
		if err != nil {
			return nil, fmt.Errorf("parsing endpoint catalog: %w", err)
		}

		if _, exists := catalog.endpoints[endpoint.Name]; exists {
			return nil, fmt.Errorf("parsing endpoint catalog: %w: %s", ErrDuplicateEndpoint, endpoint.Name)
		}

		catalog.endpoints[endpoint.Name] = endpoint
		catalog.names = append(catalog.names, endpoint.Name)
	}

	slices.Sort(catalog.names)

	return catalog, nil
}

var loadDefaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalogYAML))
})

// DefaultCatalog returns the built-in catalog of Webex endpoints.
func DefaultCatalog() (*Catalog, error) {
	return loadDefaultCatalog()
}

// Lookup returns the endpoint called name.
func (c *Catalog) Lookup(name string) (*Endpoint, error) {
	endpoint, ok := c.endpoints[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEndpoint, name)
	}

	clone := *endpoint
	clone.Query = slices.Clone(endpoint.Query)

	return &clone, nil
}

// Names returns the endpoint names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Len returns the number of endpoints.
func (c *Catalog) Len() int {
	return len(c.names)
}
