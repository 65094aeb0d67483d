// Package svgpath extracts coordinates from SVG path data and derives the
// bounding box and center of a path.
//
// The parser is loose: it only splits the input into command
// letters and numbers, it never validates command arity, and it never fails.
package svgpath

import "strconv"

// Command is one drawing instruction: a command letter and the numbers that
// followed it in the source string.
type Command struct {
	Code   byte
	Values []float64
}

// Parse splits path data into commands. Any ASCII letter other than e/E starts
// a new command, whether or not it is a legal SVG command. Numbers seen before
// the first letter are attributed to the first command. Text that is neither a
// letter nor a number is skipped.
func Parse(d string) []Command {
	var (
		cmds   []Command
		code   byte
		values []float64
	)
	for i := 0; i < len(d); {
		c := d[i]
		if isCommandLetter(c) {
			if code != 0 {
				cmds = append(cmds, Command{Code: code, Values: values})
				values = nil
			}
			code = c
			i++
			continue
		}
		n := scanNumber(d, i)
		if n == 0 {
			i++
			continue
		}
		// ErrRange still yields ±Inf or 0, the same value parseFloat gives.
		v, _ := strconv.ParseFloat(d[i:i+n], 64)
		values = append(values, v)
		i += n
	}
	if code != 0 {
		cmds = append(cmds, Command{Code: code, Values: values})
	}
	return cmds
}

func isCommandLetter(c byte) bool {
	if c == 'e' || c == 'E' {
		return false
	}
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func digits(s string, i int) int {
	n := 0
	for i+n < len(s) && isDigit(s[i+n]) {
		n++
	}
	return n
}

// scanNumber returns the length of the numeric literal starting at s[i], or 0.
// Grammar: [+-]? \d* \.? \d+ ([eE] [+-]? \d+)?
// A trailing dot without digits is not part of the number ("1." is "1").
func scanNumber(s string, i int) int {
	j := i
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	intDigits := digits(s, j)
	j += intDigits
	if j < len(s) && s[j] == '.' {
		if frac := digits(s, j+1); frac > 0 {
			j += 1 + frac
		} else if intDigits == 0 {
			return 0
		}
	} else if intDigits == 0 {
		return 0
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := j + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		if exp := digits(s, k); exp > 0 {
			j = k + exp
		}
	}
	return j - i
}
