package webex

import (
	"context"
	"fmt"
	"iter"
	"maps"
	"net/http"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tomnomnom/linkheader"

	"github.com/fivetwenty-io/wxc/internal/constants"
)

// PaginationOptions configures how a listing is followed.
type PaginationOptions struct {
	// PageSize sets the "max" query parameter on the initial request.
	PageSize int
	// MaxPages stops after this many pages. Zero means no limit.
	MaxPages int
	// NextURLKeys are envelope fields holding a next-page URL, checked when
	// the response has no Link rel="next" header.
	NextURLKeys []string
	// TokenKey is an envelope field holding an opaque continuation token.
	// When found, the initial request is reissued with TokenParam=token.
	TokenKey   string
	TokenParam string
}

// DefaultPaginationOptions returns the options used when none are given.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		NextURLKeys: []string{constants.DefaultNextURLKey},
	}
}

// Page is one decoded page of a listing.
type Page[T any] struct {
	Items []T
	// Next is the request for the following page, nil on the last page.
	Next *RequestDescriptor
}

// FetchPage sends req and decodes one page of items under itemKey.
func FetchPage[T any](ctx context.Context, transport Transport, req *RequestDescriptor, itemKey string, opts *PaginationOptions) (*Page[T], error) {
	if opts == nil {
		opts = DefaultPaginationOptions()
	}

	resp, err := transport.Send(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetching page %s: %w", req.URL(), err)
	}

	items, err := DecodeList[T](resp.Body, itemKey)
	if err != nil {
		return nil, fmt.Errorf("decoding page %s: %w", req.URL(), err)
	}

	page := &Page[T]{Items: items}
	if len(items) > 0 {
		page.Next = nextRequest(req, resp, opts)
	}

	return page, nil
}

// nextRequest finds the continuation of req in resp. The server's next URL is
// used verbatim; offsets are never recomputed here.
func nextRequest(req *RequestDescriptor, resp *Response, opts *PaginationOptions) *RequestDescriptor {
	if resp.Headers != nil {
		links := linkheader.ParseMultiple(resp.Headers.Values("Link")).FilterByRel("next")
		if len(links) > 0 && links[0].URL != "" {
			return followURL(req, links[0].URL)
		}
	}

	for _, key := range opts.NextURLKeys {
		result := gjson.GetBytes(resp.Body, escapePath(key))
		if result.Type == gjson.String && result.Str != "" {
			return followURL(req, result.Str)
		}
	}

	if opts.TokenKey != "" && opts.TokenParam != "" {
		result := gjson.GetBytes(resp.Body, escapePath(opts.TokenKey))
		if result.Exists() && result.Type != gjson.Null && result.String() != "" {
			next := cloneRequest(req)
			next.Query.Set(opts.TokenParam, result.String())

			return next
		}
	}

	return nil
}

func followURL(req *RequestDescriptor, nextURL string) *RequestDescriptor {
	return &RequestDescriptor{
		Method:  http.MethodGet,
		Path:    nextURL,
		Headers: maps.Clone(req.Headers),
	}
}

func cloneRequest(req *RequestDescriptor) *RequestDescriptor {
	query := make(map[string][]string, len(req.Query))
	for name, vals := range req.Query {
		query[name] = append([]string(nil), vals...)
	}

	return &RequestDescriptor{
		Method:  req.Method,
		Path:    req.Path,
		Query:   query,
		Body:    req.Body,
		Headers: maps.Clone(req.Headers),
	}
}

// Paginator presents a paged listing as one lazy, forward-only sequence. It
// fetches one page per page boundary, never concurrently, and cannot be
// restarted: build a new request to enumerate again.
type Paginator[T any] struct {
	ctx       context.Context //nolint:containedctx // a paginator is bound to the call that created it
	transport Transport
	itemKey   string
	options   *PaginationOptions

	next     *RequestDescriptor
	items    []T
	index    int
	pages    int
	err      error
	reported bool
}

// Paginate starts a paginated sequence at initial. Nothing is fetched until
// the first pull.
func Paginate[T any](ctx context.Context, transport Transport, initial *RequestDescriptor, itemKey string, opts *PaginationOptions) *Paginator[T] {
	if opts == nil {
		opts = DefaultPaginationOptions()
	}

	first := initial
	if initial != nil && opts.PageSize > 0 {
		first = cloneRequest(initial)
		first.Query.Set(constants.MaxPageSizeParam, strconv.Itoa(opts.PageSize))
	}

	return &Paginator[T]{
		ctx:       ctx,
		transport: transport,
		itemKey:   itemKey,
		options:   opts,
		next:      first,
	}
}

// NewFailedPaginator returns a sequence whose first pull yields err. Call
// sites use it when the initial request cannot be built.
func NewFailedPaginator[T any](err error) *Paginator[T] {
	return &Paginator[T]{err: err, options: DefaultPaginationOptions()}
}

// HasNext reports whether Next will return an item or a pending error. It may
// fetch the next page.
func (p *Paginator[T]) HasNext() bool {
	for p.index >= len(p.items) {
		if p.err != nil {
			return !p.reported
		}

		if p.next == nil {
			return false
		}

		p.fetch()
	}

	return true
}

// Next returns the next item. A page failure is returned once reached and
// on every later call; items already returned stay valid.
func (p *Paginator[T]) Next() (T, error) {
	var zero T

	if !p.HasNext() {
		if p.err != nil {
			return zero, p.err
		}

		return zero, ErrNoMoreItems
	}

	if p.index >= len(p.items) {
		p.reported = true

		return zero, p.err
	}

	item := p.items[p.index]
	p.index++

	return item, nil
}

// Err returns the failure that ended the sequence, if any.
func (p *Paginator[T]) Err() error {
	return p.err
}

// Pages returns how many page requests have been issued.
func (p *Paginator[T]) Pages() int {
	return p.pages
}

// All drains the sequence. On failure it returns the items gathered so far
// with the error.
func (p *Paginator[T]) All() ([]T, error) {
	var all []T

	for p.HasNext() {
		item, err := p.Next()
		if err != nil {
			return all, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach calls fn for each item until fn or a page fetch fails.
func (p *Paginator[T]) ForEach(fn func(T) error) error {
	for p.HasNext() {
		item, err := p.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// Items returns the sequence as a range-over-func iterator. A failure is
// yielded once as (zero, err) and ends the iteration.
func (p *Paginator[T]) Items() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for p.HasNext() {
			item, err := p.Next()
			if !yield(item, err) || err != nil {
				return
			}
		}
	}
}

func (p *Paginator[T]) fetch() {
	req := p.next
	p.next = nil

	if p.transport == nil {
		p.err = ErrTransportRequired

		return
	}

	err := p.ctx.Err()
	if err != nil {
		p.err = fmt.Errorf("paginating %s: %w", req.URL(), err)

		return
	}

	p.pages++

	page, err := FetchPage[T](p.ctx, p.transport, req, p.itemKey, p.options)
	if err != nil {
		p.err = err

		return
	}

	p.items = page.Items
	p.index = 0

	if p.options.MaxPages > 0 && p.pages >= p.options.MaxPages {
		return
	}

	p.next = page.Next
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Items []T
	Page  int
	Err   error
}

// FetchAllPages collects every item of the listing started at initial.
func FetchAllPages[T any](ctx context.Context, transport Transport, initial *RequestDescriptor, itemKey string, opts *PaginationOptions) ([]T, error) {
	items, err := Paginate[T](ctx, transport, initial, itemKey, opts).All()
	if err != nil {
		return nil, err
	}

	return items, nil
}

// StreamPages delivers pages on a channel as they are fetched. Pages are
// fetched one after another by a single goroutine; the channel closes after
// the last page, the first error, or ctx cancellation. A nil initial request
// yields no pages, and a nil transport fails page 1 with ErrTransportRequired.
func StreamPages[T any](ctx context.Context, transport Transport, initial *RequestDescriptor, itemKey string, opts *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T], constants.StreamBufferSize)

	if opts == nil {
		opts = DefaultPaginationOptions()
	}

	if initial == nil {
		close(results)

		return results
	}

	if transport == nil {
		failed := make(chan PageResult[T], 1)
		failed <- PageResult[T]{Page: 1, Err: ErrTransportRequired}
		close(failed)

		return failed
	}

	go func() {
		defer close(results)

		req := initial
		if opts.PageSize > 0 {
			req = cloneRequest(initial)
			req.Query.Set(constants.MaxPageSizeParam, strconv.Itoa(opts.PageSize))
		}

		for pageNum := 1; req != nil; pageNum++ {
			page, err := FetchPage[T](ctx, transport, req, itemKey, opts)

			result := PageResult[T]{Page: pageNum, Err: err}
			if page != nil {
				result.Items = page.Items
			}

			select {
			case results <- result:
			case <-ctx.Done():
				return
			}

			if err != nil || page.Next == nil || (opts.MaxPages > 0 && pageNum >= opts.MaxPages) {
				return
			}

			req = page.Next
		}
	}()

	return results
}
