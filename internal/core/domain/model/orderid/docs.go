// Package orderid issues the human-readable order codes (RKR000, RKR001, ...).
//
// There is no counter: the next code is derived from the latest code already stored,
// so two concurrent creations can pick the same code. The store's uniqueness rule
// catches the loser, which re-reads the latest code and tries again (see the order
// code allocation in the commands package).
package orderid
