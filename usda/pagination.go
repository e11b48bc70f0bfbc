package usda

import "context"

// ListPager walks a list endpoint page by page. Each Next call performs
// one request; iteration ends when the endpoint's total is reached.
type ListPager struct {
	client   *Client
	listType ListType
	opts     ListOptions
	offset   int
	total    int
	started  bool
}

// ListPager returns a pager over the given list type, starting at
// opts.Offset and stepping by opts.Max per page.
func (c *Client) ListPager(lt ListType, opts ListOptions) *ListPager {
	return &ListPager{
		client:   c,
		listType: lt,
		opts:     opts,
		offset:   opts.Offset,
	}
}

// Next fetches the next page. It returns nil items once the list is
// exhausted.
func (p *ListPager) Next(ctx context.Context) ([]ListItem, error) {
	if p.started && p.offset >= p.total {
		return nil, nil
	}

	opts := p.opts
	opts.Offset = p.offset
	list, err := p.client.list(ctx, p.listType, opts)
	if err != nil {
		return nil, err
	}

	p.started = true
	p.total = list.Total
	p.offset = list.End
	if len(list.Items) == 0 {
		// Guard against a stuck offset when the server returns an
		// empty page before reaching total.
		p.offset = p.total
		return nil, nil
	}

	return list.Items, nil
}

// All drains the pager and returns every remaining item.
func (p *ListPager) All(ctx context.Context) ([]ListItem, error) {
	var all []ListItem
	for {
		items, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		if items == nil {
			return all, nil
		}
		all = append(all, items...)
	}
}

// SearchPager walks search results page by page.
type SearchPager struct {
	client  *Client
	opts    SearchOptions
	offset  int
	total   int
	started bool
}

// SearchPager returns a pager over foods matching opts.Query.
func (c *Client) SearchPager(opts SearchOptions) *SearchPager {
	return &SearchPager{
		client: c,
		opts:   opts,
		offset: opts.Offset,
	}
}

// Next fetches the next page of results. It returns nil items once the
// search is exhausted.
func (p *SearchPager) Next(ctx context.Context) ([]FoodItem, error) {
	if p.started && p.offset >= p.total {
		return nil, nil
	}

	opts := p.opts
	opts.Offset = p.offset
	result, err := p.client.SearchFoods(ctx, opts)
	if err != nil {
		return nil, err
	}

	p.started = true
	p.total = result.Total
	p.offset = result.End
	if len(result.Items) == 0 {
		p.offset = p.total
		return nil, nil
	}

	return result.Items, nil
}

// All drains the pager and returns every remaining result.
func (p *SearchPager) All(ctx context.Context) ([]FoodItem, error) {
	var all []FoodItem
	for {
		items, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		if items == nil {
			return all, nil
		}
		all = append(all, items...)
	}
}
