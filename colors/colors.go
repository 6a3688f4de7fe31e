// Package colors resolves CSS color strings (named colors, hex notation,
// rgb()/rgba() functions) into normalized hex strings.
package colors

import (
	"fmt"
	"strconv"
	"strings"
)

var namedColors = map[string]string{
	"aqua":        "#00ffff",
	"black":       "#000000",
	"blue":        "#0000ff",
	"brown":       "#a52a2a",
	"cyan":        "#00ffff",
	"fuchsia":     "#ff00ff",
	"gold":        "#ffd700",
	"gray":        "#808080",
	"green":       "#008000",
	"grey":        "#808080",
	"indigo":      "#4b0082",
	"lime":        "#00ff00",
	"magenta":     "#ff00ff",
	"maroon":      "#800000",
	"navy":        "#000080",
	"olive":       "#808000",
	"orange":      "#ffa500",
	"pink":        "#ffc0cb",
	"purple":      "#800080",
	"red":         "#ff0000",
	"silver":      "#c0c0c0",
	"teal":        "#008080",
	"violet":      "#ee82ee",
	"white":       "#ffffff",
	"yellow":      "#ffff00",
	"transparent": "#00000000",
}

// Parse resolves a CSS color value to a normalized lowercase hex string
// ("#rrggbb", or "#rrggbbaa" when the alpha channel is not opaque).
// It reports false for values it cannot resolve.
func Parse(value string) (string, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", false
	}

	if hex, ok := namedColors[value]; ok {
		return hex, true
	}
	if strings.HasPrefix(value, "#") {
		return parseHex(value[1:])
	}
	if strings.HasPrefix(value, "rgb(") || strings.HasPrefix(value, "rgba(") {
		return parseRGB(value)
	}

	return "", false
}

func parseHex(hex string) (string, bool) {
	var r, g, b uint8
	a := uint8(0xff)

	switch len(hex) {
	case 3, 4:
		for _, c := range []byte(hex) {
			if !isHexDigit(c) {
				return "", false
			}
		}
		r = hexDigit(hex[0]) * 17
		g = hexDigit(hex[1]) * 17
		b = hexDigit(hex[2]) * 17
		if len(hex) == 4 {
			a = hexDigit(hex[3]) * 17
		}
	case 6, 8:
		for _, c := range []byte(hex) {
			if !isHexDigit(c) {
				return "", false
			}
		}
		r = hexDigit(hex[0])<<4 | hexDigit(hex[1])
		g = hexDigit(hex[2])<<4 | hexDigit(hex[3])
		b = hexDigit(hex[4])<<4 | hexDigit(hex[5])
		if len(hex) == 8 {
			a = hexDigit(hex[6])<<4 | hexDigit(hex[7])
		}
	default:
		return "", false
	}

	return format(r, g, b, a), true
}

func parseRGB(value string) (string, bool) {
	open := strings.IndexByte(value, '(')
	end := strings.LastIndexByte(value, ')')
	if open < 0 || end < open {
		return "", false
	}

	parts := strings.FieldsFunc(value[open+1:end], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(parts) < 3 || len(parts) > 4 {
		return "", false
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		channel, ok := parseChannel(parts[i])
		if !ok {
			return "", false
		}
		channels[i] = channel
	}

	a := uint8(0xff)
	if len(parts) == 4 {
		alpha, ok := parseAlpha(parts[3])
		if !ok {
			return "", false
		}
		a = alpha
	}

	return format(channels[0], channels[1], channels[2], a), true
}

// parseChannel accepts an integer 0-255 or a percentage.
func parseChannel(value string) (uint8, bool) {
	if strings.HasSuffix(value, "%") {
		percent, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err != nil {
			return 0, false
		}
		return uint8(clamp(percent/100*255+0.5, 0, 255)), true
	}

	channel, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return uint8(clamp(float64(channel), 0, 255)), true
}

// parseAlpha accepts a 0-1 float or a percentage.
func parseAlpha(value string) (uint8, bool) {
	if strings.HasSuffix(value, "%") {
		percent, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err != nil {
			return 0, false
		}
		return uint8(clamp(percent/100*255+0.5, 0, 255)), true
	}

	alpha, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return uint8(clamp(alpha*255+0.5, 0, 255)), true
}

func format(r, g, b, a uint8) string {
	if a == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f')
}

func hexDigit(c byte) uint8 {
	if c <= '9' {
		return c - '0'
	}
	return c - 'a' + 10
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
