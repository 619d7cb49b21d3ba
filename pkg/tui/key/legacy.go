// ABOUTME: Decoder for xterm/vt style CSI and SS3 key sequences, including modifier parameters
// ABOUTME: ESC [ 1 ; m X carries shift/alt/ctrl as bits of m-1

package key

import (
	"strconv"
	"strings"
)

// finals maps the final byte of ESC [ X and ESC O X sequences.
var finals = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// tildes maps n in ESC [ n ~. 1/4 and 7/8 are the vt220 and rxvt
// home/end codes.
var tildes = map[int]KeyType{
	1: KeyHome,
	3: KeyDelete,
	4: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
	7: KeyHome,
	8: KeyEnd,
}

func parseLegacy(data string) (Key, bool) {
	if data == "\x1b[Z" {
		return Key{Type: KeyBackTab, Shift: true}, true
	}
	if len(data) < 3 || data[0] != 0x1b || (data[1] != '[' && data[1] != 'O') {
		return Key{}, false
	}
	body, final := data[2:len(data)-1], data[len(data)-1]
	params := strings.Split(body, ";")
	if len(params) > 2 {
		return Key{}, false
	}

	var k Key
	if final == '~' {
		n, err := strconv.Atoi(params[0])
		t, ok := tildes[n]
		if err != nil || !ok || data[1] != '[' {
			return Key{}, false
		}
		k.Type = t
	} else {
		t, ok := finals[final]
		if !ok || (body != "" && params[0] != "1") {
			return Key{}, false
		}
		k.Type = t
	}

	if len(params) == 2 {
		m, err := strconv.Atoi(params[1])
		if err != nil || m < 1 {
			return Key{}, false
		}
		m--
		k.Shift = m&1 != 0
		k.Alt = m&2 != 0
		k.Ctrl = m&4 != 0
	}
	return k, true
}
