// Package finance holds the shop's money records that are not orders: operating
// expenses and salary payments to employees, plus the Period they are reported over.
package finance
