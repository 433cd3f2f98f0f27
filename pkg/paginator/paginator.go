package paginator

import (
	"strconv"
	"strings"
)

const DefaultPerPage = 10

// Paginator splits a collection of Count items into pages of PerPage items.
// A collection without items still has one empty page.
type Paginator struct {
	Count   int64
	PerPage int
}

func New(count int64, perPage int) Paginator {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	if count < 0 {
		count = 0
	}

	return Paginator{Count: count, PerPage: perPage}
}

func (p Paginator) NumPages() int {
	if p.Count == 0 {
		return 1
	}

	perPage := int64(p.PerPage)
	return int((p.Count + perPage - 1) / perPage)
}

// Clamp moves an out of range page number to the nearest valid page.
func (p Paginator) Clamp(number int) int {
	if number < 1 {
		return 1
	}

	if last := p.NumPages(); number > last {
		return last
	}

	return number
}

// Page returns the page with the given number after clamping it.
func (p Paginator) Page(number int) Page {
	number = p.Clamp(number)
	return Page{
		Number:   number,
		NumPages: p.NumPages(),
		Count:    p.Count,
		Offset:   (number - 1) * p.PerPage,
		Limit:    p.PerPage,
	}
}

type Page struct {
	Number   int
	NumPages int
	Count    int64
	Offset   int
	Limit    int
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

// ParsePageNumber reads the page query parameter. Missing or non numeric
// values mean the first page.
func ParsePageNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}

	return n
}
