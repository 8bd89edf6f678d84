// Package report renders generated order tables for the terminal: an
// aggregate summary and an hourly participant histogram with the theoretical
// Gaussian arrival curve overlaid.
package report
