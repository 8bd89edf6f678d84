package model

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// OrderSide is the side of an order record.
type OrderSide uint8

const (
	SideBid OrderSide = iota // Prosumer offering energy
	SideAsk                  // Consumer requesting energy
)

func (s OrderSide) String() string {
	switch s {
	case SideBid:
		return "Bid"
	case SideAsk:
		return "Ask"
	default:
		return "Unknown"
	}
}

// ParseSide parses "Bid" or "Ask" (case-insensitive).
func ParseSide(s string) (OrderSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bid":
		return SideBid, nil
	case "ask":
		return SideAsk, nil
	}
	return 0, fmt.Errorf("unknown order side %q", s)
}

// ParticipantID is an optional participant number. The zero value is absent.
type ParticipantID struct {
	id    int
	valid bool
}

// NoParticipant marks a placeholder record.
var NoParticipant = ParticipantID{}

// Participant returns a present participant id.
func Participant(id int) ParticipantID {
	return ParticipantID{id: id, valid: true}
}

// Get returns the id and whether it is present.
func (p ParticipantID) Get() (int, bool) { return p.id, p.valid }

// Valid reports whether the id is present.
func (p ParticipantID) Valid() bool { return p.valid }

// String returns the decimal id, or "" when absent.
func (p ParticipantID) String() string {
	if !p.valid {
		return ""
	}
	return strconv.Itoa(p.id)
}

// Compare orders present ids ascending and absent ids after all present ones.
func (p ParticipantID) Compare(o ParticipantID) int {
	switch {
	case p.valid && o.valid:
		return cmp.Compare(p.id, o.id)
	case p.valid:
		return -1
	case o.valid:
		return 1
	default:
		return 0
	}
}

// OrderRecord is one row of the generated order book.
type OrderRecord struct {
	Hour        int           // Trading hour, 0 <= Hour < hours
	Participant ParticipantID // Absent for placeholders
	Side        OrderSide
	Price       float64 // cents/KWh, 0 for placeholders
	Quantity    float64 // KW, 0 for placeholders
}

// Placeholder returns the record emitted for an hour below threshold.
func Placeholder(hour int, side OrderSide) OrderRecord {
	return OrderRecord{Hour: hour, Participant: NoParticipant, Side: side}
}

// IsPlaceholder reports whether r stands in for an hour without real orders.
func (r OrderRecord) IsPlaceholder() bool { return !r.Participant.Valid() }

// compareRecords is the table order: hour, then participant id with absent ids last.
func compareRecords(a, b OrderRecord) int {
	if c := cmp.Compare(a.Hour, b.Hour); c != 0 {
		return c
	}
	return a.Participant.Compare(b.Participant)
}

// OrderTable is the ordered output of one generation call.
type OrderTable []OrderRecord

// Sort orders the table by (hour, participant). The sort is stable, so a
// placeholder Bid emitted before its Ask stays first.
func (t OrderTable) Sort() {
	slices.SortStableFunc(t, compareRecords)
}

// IsSorted reports whether the table is in (hour, participant) order.
func (t OrderTable) IsSorted() bool {
	return slices.IsSortedFunc(t, compareRecords)
}

// CountsByHour returns the number of records per hour. Records outside
// [0, hours) are ignored.
func (t OrderTable) CountsByHour(hours int) []int {
	counts := make([]int, hours)
	for _, r := range t {
		if r.Hour >= 0 && r.Hour < hours {
			counts[r.Hour]++
		}
	}
	return counts
}

// ByHour groups records by hour, preserving table order within each hour.
func (t OrderTable) ByHour(hours int) [][]OrderRecord {
	groups := make([][]OrderRecord, hours)
	for _, r := range t {
		if r.Hour >= 0 && r.Hour < hours {
			groups[r.Hour] = append(groups[r.Hour], r)
		}
	}
	return groups
}

// SideCounts tallies a table.
type SideCounts struct {
	Bids         int
	Asks         int
	Placeholders int
}

// Sides counts real bids, real asks and placeholders.
func (t OrderTable) Sides() SideCounts {
	var c SideCounts
	for _, r := range t {
		switch {
		case r.IsPlaceholder():
			c.Placeholders++
		case r.Side == SideBid:
			c.Bids++
		default:
			c.Asks++
		}
	}
	return c
}

// Hours returns the highest hour in the table plus one.
func (t OrderTable) Hours() int {
	n := 0
	for _, r := range t {
		if r.Hour+1 > n {
			n = r.Hour + 1
		}
	}
	return n
}
