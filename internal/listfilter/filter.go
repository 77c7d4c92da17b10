// Package listfilter maps the auction list filter to gateway query parameters.
package listfilter

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Filter selects which auctions the list shows
type Filter int

const (
	All Filter = iota
	Mine
	Open
	Closed
)

var names = map[Filter]string{
	All:    "all",
	Mine:   "mine",
	Open:   "open",
	Closed: "closed",
}

// The gateway's is_closed flag reads inverted: is_closed=1 returns auctions
// that are still open.
var queryParams = map[Filter]map[string]int{
	All:    {},
	Mine:   {"is_me": 1},
	Open:   {"is_closed": 1},
	Closed: {"is_closed": 0},
}

// QueryParams returns the gateway parameters for f. Unknown values behave like All.
func (f Filter) QueryParams() map[string]int {
	params := make(map[string]int, 1)
	for k, v := range queryParams[f] {
		params[k] = v
	}
	return params
}

// Values encodes the parameters for a request URL
func (f Filter) Values() url.Values {
	params := f.QueryParams()
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		values.Set(k, strconv.Itoa(params[k]))
	}
	return values
}

func (f Filter) String() string {
	if name, ok := names[f]; ok {
		return name
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// Parse reads a filter name; "my" is accepted as an alias of "mine"
func Parse(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, nil
	case "mine", "my":
		return Mine, nil
	case "open":
		return Open, nil
	case "closed":
		return Closed, nil
	default:
		return All, fmt.Errorf("unknown filter %q: want one of all, mine, open, closed", s)
	}
}
