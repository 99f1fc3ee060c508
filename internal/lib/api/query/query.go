// Package query turns listing query strings into storage filters.
//
// Supported syntax:
//
//	?event=3&confirmed=true                exact and boolean filters
//	?content=great                         partial (case-insensitive) match
//	?expireAt[after]=2023-01-01            date ranges: before, strictly_before, after, strictly_after
//	?order[createdAt]=desc&order[id]=asc   ordering, in query order
//	?page=2&itemsPerPage=50                1-based pagination
package query

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eventPlanner/internal/models"
)

// Error names the offending query parameter.
type Error struct {
	Param string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid value for query parameter %q", e.Param)
}

type Parser struct {
	DefaultItemsPerPage int
	MaxItemsPerPage     int
}

func (p Parser) Page(values url.Values) (models.Page, error) {
	page := models.Page{Number: 1, ItemsPerPage: p.DefaultItemsPerPage}

	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return models.Page{}, &Error{Param: "page"}
		}
		page.Number = n
	}

	if raw := values.Get("itemsPerPage"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return models.Page{}, &Error{Param: "itemsPerPage"}
		}
		page.ItemsPerPage = n
	}

	if p.MaxItemsPerPage > 0 && page.ItemsPerPage > p.MaxItemsPerPage {
		page.ItemsPerPage = p.MaxItemsPerPage
	}

	// the offset must fit in an int
	if page.ItemsPerPage > 0 && page.Number-1 > math.MaxInt/page.ItemsPerPage {
		return models.Page{}, &Error{Param: "page"}
	}

	return page, nil
}

// Orders reads order[field]=asc|desc pairs in the order they appear in rawQuery.
func Orders(rawQuery string) ([]models.Order, error) {
	var orders []models.Order

	for _, pair := range strings.Split(rawQuery, "&") {
		key, value, _ := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(key)
		if err != nil {
			continue
		}
		if !strings.HasPrefix(key, "order[") || !strings.HasSuffix(key, "]") {
			continue
		}

		field := strings.TrimSuffix(strings.TrimPrefix(key, "order["), "]")
		value, err = url.QueryUnescape(value)
		if err != nil {
			return nil, &Error{Param: key}
		}

		switch strings.ToLower(value) {
		case "", "asc":
			orders = append(orders, models.Order{Field: field})
		case "desc":
			orders = append(orders, models.Order{Field: field, Desc: true})
		default:
			return nil, &Error{Param: key}
		}
	}

	return orders, nil
}

func Int64(values url.Values, key string) (*int64, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}

	// IRIs such as /events/3 are accepted as well as bare ids
	raw = raw[strings.LastIndex(raw, "/")+1:]

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &Error{Param: key}
	}

	return &v, nil
}

func Int(values url.Values, key string) (*int, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &Error{Param: key}
	}

	return &v, nil
}

func Bool(values url.Values, key string) (*bool, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, &Error{Param: key}
	}

	return &v, nil
}

func DateRange(values url.Values, key string) (models.DateRange, error) {
	var r models.DateRange

	bounds := []struct {
		name string
		dst  **time.Time
	}{
		{"before", &r.Before},
		{"strictly_before", &r.StrictlyBefore},
		{"after", &r.After},
		{"strictly_after", &r.StrictlyAfter},
	}

	for _, b := range bounds {
		param := key + "[" + b.name + "]"
		raw := values.Get(param)
		if raw == "" {
			continue
		}

		t, err := parseTime(raw)
		if err != nil {
			return models.DateRange{}, &Error{Param: param}
		}
		*b.dst = &t
	}

	return r, nil
}

func parseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}

func (p Parser) Invitations(u *url.URL) (models.ListQuery[models.InvitationFilter], error) {
	var q models.ListQuery[models.InvitationFilter]
	values := u.Query()

	var err error
	f := &q.Filter

	if f.ID, err = Int64(values, "id"); err != nil {
		return q, err
	}
	if f.EventID, err = Int64(values, "event"); err != nil {
		return q, err
	}
	if f.RecipientID, err = Int64(values, "recipient"); err != nil {
		return q, err
	}
	if f.Confirmed, err = Bool(values, "confirmed"); err != nil {
		return q, err
	}
	if f.Expired, err = Bool(values, "expired"); err != nil {
		return q, err
	}
	if f.ExpireAt, err = DateRange(values, "expireAt"); err != nil {
		return q, err
	}

	return paginate(p, q, u)
}

func (p Parser) Comments(u *url.URL) (models.ListQuery[models.CommentFilter], error) {
	var q models.ListQuery[models.CommentFilter]
	values := u.Query()

	var err error
	f := &q.Filter

	if f.ID, err = Int64(values, "id"); err != nil {
		return q, err
	}
	if f.AuthorID, err = Int64(values, "author"); err != nil {
		return q, err
	}
	if f.EventID, err = Int64(values, "event"); err != nil {
		return q, err
	}
	if f.Rate, err = Int(values, "rate"); err != nil {
		return q, err
	}
	f.Content = values.Get("content")

	return paginate(p, q, u)
}

func (p Parser) Places(u *url.URL) (models.ListQuery[models.PlaceFilter], error) {
	var q models.ListQuery[models.PlaceFilter]
	values := u.Query()

	var err error
	if q.Filter.ID, err = Int64(values, "id"); err != nil {
		return q, err
	}

	q.Filter.Name = values.Get("name")
	q.Filter.StreetNumber = values.Get("streetNumber")
	q.Filter.StreetName = values.Get("streetName")
	q.Filter.City = values.Get("city")
	q.Filter.PostalCode = values.Get("postalCode")
	q.Filter.Country = values.Get("country")

	return paginate(p, q, u)
}

func paginate[F any](p Parser, q models.ListQuery[F], u *url.URL) (models.ListQuery[F], error) {
	var err error

	if q.Page, err = p.Page(u.Query()); err != nil {
		return q, err
	}
	if q.Order, err = Orders(u.RawQuery); err != nil {
		return q, err
	}

	return q, nil
}
