// Package generator synthesizes a mock transactive energy order book.
//
// A run has three stages:
//   - SampleArrivals draws Normal arrival times and buckets them per hour
//   - ScaleParticipants rescales the bucket counts so the busiest hour has max_players
//   - BuildOrders emits bids and asks per hour, or placeholders below min_players
//
// All randomness comes from the *rand.Rand passed in, so a seeded source
// reproduces the same table.
package generator
