package main

import (
	"fmt"
	"os"
	"strings"
)

type toggle string

const (
	toggleAuto toggle = "auto"
	toggleOn   toggle = "on"
	toggleOff  toggle = "off"
)

// readToggle parses the auto|on|off values shared by --ui and --color.
func readToggle(flag, value string) (toggle, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return toggleAuto, nil
	case "on":
		return toggleOn, nil
	case "off":
		return toggleOff, nil
	default:
		return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
}

func (t toggle) enabled(f *os.File) bool {
	switch t {
	case toggleOn:
		return true
	case toggleOff:
		return false
	default:
		return isTerminal(f)
	}
}
