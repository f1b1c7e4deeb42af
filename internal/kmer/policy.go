package kmer

import (
	"fmt"
	"strings"
)

// Policy decides which windows are counted. The enumerator never filters;
// the counter asks the policy about each window.
type Policy uint8

const (
	// PolicyInclude counts every window verbatim, ambiguous symbols included.
	PolicyInclude Policy = iota
	// PolicySkip drops windows holding any byte other than A, C, G or T.
	PolicySkip
)

var unambiguous = [256]bool{'A': true, 'C': true, 'G': true, 'T': true}

// Accept reports whether window w is counted under p.
func (p Policy) Accept(w []byte) bool {
	if p != PolicySkip {
		return true
	}
	for _, b := range w {
		if !unambiguous[b] {
			return false
		}
	}
	return true
}

func (p Policy) String() string {
	switch p {
	case PolicyInclude:
		return "include"
	case PolicySkip:
		return "skip"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy maps "include" and "skip" (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "include":
		return PolicyInclude, nil
	case "skip":
		return PolicySkip, nil
	}
	return PolicyInclude, fmt.Errorf("invalid ambiguity policy %q (want include | skip)", s)
}
