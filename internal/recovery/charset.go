package recovery

import (
	"regexp"
	"strconv"

	"golang.org/x/text/encoding/charmap"
)

// codePage identifies the character encoding declared in the RTF header.
// Hex escapes (\'HH) are decoded against it.
type codePage int

// defaultCodePage is Windows-1252, the \ansi default.
const defaultCodePage codePage = 1252

var codePageDeclaration = regexp.MustCompile(`\\(?:ansicpg(\d+)|mac\b|pc\b|pca\b)`)

// codePageCharmaps covers the single-byte code pages seen in legal-document
// sources. Multi-byte East Asian pages are out of scope; their escapes fall
// back to the raw byte.
var codePageCharmaps = map[codePage]*charmap.Charmap{
	437:  charmap.CodePage437,
	850:  charmap.CodePage850,
	852:  charmap.CodePage852,
	866:  charmap.CodePage866,
	874:  charmap.Windows874,
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1255: charmap.Windows1255,
	1256: charmap.Windows1256,
	1257: charmap.Windows1257,
	1258: charmap.Windows1258,
}

// macCodePage is a synthetic marker for the \mac declaration.
const macCodePage codePage = -1

// detectCodePage scans the raw input for a code-page declaration. It runs
// before preamble elimination because the declaration lives in the header
// that stage deletes.
func detectCodePage(raw string) codePage {
	m := codePageDeclaration.FindStringSubmatch(raw)
	if m == nil {
		return defaultCodePage
	}
	if m[1] == "" {
		switch m[0] {
		case `\mac`:
			return macCodePage
		case `\pc`:
			return 437
		case `\pca`:
			return 850
		}
		return defaultCodePage
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultCodePage
	}
	return codePage(n)
}

// decodeHexEscape converts a two-digit hex escape to its literal character
// under the declared code page. Undecodable bytes are dropped rather than
// guessed at.
func decodeHexEscape(hex string, cp codePage) string {
	n, err := strconv.ParseUint(hex, 16, 8)
	if err != nil {
		return ""
	}

	cm := codePageCharmaps[cp]
	if cp == macCodePage {
		cm = charmap.Macintosh
	}
	if cm == nil {
		cm = charmap.Windows1252
	}

	r := cm.DecodeByte(byte(n))
	if r == '�' {
		return ""
	}
	return string(r)
}

// lookupUnicodeEscape resolves a \uc0\uN escape against the fixed
// translation table. Values greater than 32767 arrive as negative numbers
// in RTF; the source dialect here emits plain decimals, so only those are
// handled.
func lookupUnicodeEscape(decimal string) string {
	n, err := strconv.Atoi(decimal)
	if err != nil {
		return ""
	}
	return unicodeEscapeTable[n]
}
