package main

import (
	"gifzitto/probe"
)

// staticProbe builds a provider that always reports the given value.
func staticProbe(name string, tier probe.Tier, value string) probe.Probe {
	return probe.Probe{Name: name, Tier: tier, Run: func() (string, bool) {
		return value, true
	}}
}

// absentProbe builds a provider that never has a value.
func absentProbe(name string, tier probe.Tier) probe.Probe {
	return probe.Probe{Name: name, Tier: tier, Run: func() (string, bool) {
		return "", false
	}}
}

// testInput builds a rawInput with queued keystrokes and no terminal
// mode change, so the render loop can run against a plain buffer.
func testInput(keys ...byte) *rawInput {
	in := &rawInput{keys: make(chan byte, len(keys)+1)}
	for _, b := range keys {
		in.keys <- b
	}
	return in
}
