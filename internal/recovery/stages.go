package recovery

import (
	"fmt"
	"regexp"
	"strings"
)

// In-band markers inserted by the recovery stages and consumed during
// paragraph assembly. Control-range runes cannot appear as content in a
// text-encoded RTF document, so they are safe sentinels.
const (
	markBoldOn    = '\x02'
	markBoldOff   = '\x03'
	markItalicOn  = '\x0e'
	markItalicOff = '\x0f'

	// paragraphBreak is emitted on its own line by the paragraph-boundary
	// stage and always survives line filtering.
	paragraphBreak = "\x1d"

	// Placeholders protecting escaped literal characters from the brace
	// and backslash handling in stripResidualControls.
	placeholderBackslash  = '\x11'
	placeholderOpenBrace  = '\x12'
	placeholderCloseBrace = '\x13'
)

// Precompiled patterns, one group per stage.
var (
	// Stage 1: document-level declarations that carry no text.
	rtfDeclaration     = regexp.MustCompile(`\\rtf1(?:\\adeflang\d+)?(?:\\ansi)?(?:\\ansicpg\d+)?(?:\\deff\d+)?`)
	cocoaDeclaration   = regexp.MustCompile(`\\cocoartf\d+|\\cocoatextscaling\d+\\cocoaplatform\d+|\\cocoasubrtf\d+`)
	fontTable          = regexp.MustCompile(`\{\\fonttbl(?:[^{}]|\{[^{}]*\})*\}`)
	colorTable         = regexp.MustCompile(`\{\\colortbl[^{}]*\}`)
	expandedColorTable = regexp.MustCompile(`\{\\\*\\expandedcolortbl[^{}]*\}`)
	pageGeometry       = regexp.MustCompile(`\\paperw\d+\\paperh\d+\\margl\d+\\margr\d+(?:\\vieww\d+\\viewh\d+\\viewkind\d+)?`)
	tabDefault         = regexp.MustCompile(`\\deftab\d+`)

	// Stage 2: paragraph-reset markers. Only the reset control word itself
	// is claimed; trailing style words (\pardeftab720, \sa240, ...) are
	// separate control words and fall to the residual stage. Text directly
	// after a reset is content and must survive.
	paragraphDefaults = regexp.MustCompile(`\\pardeftab\d*`)
	paragraphReset    = regexp.MustCompile(`\\pard\b`)

	// Stage 3: font-switch combinations that signal emphasis. The trailing
	// character class keeps the match from claiming \b0 or \i0 (those are
	// the matching end markers) or a longer control word.
	boldStart   = regexp.MustCompile(`\\f0\\b(?:\\fs\d+)?(?:[^0-9A-Za-z]|$)`)
	boldEnd     = regexp.MustCompile(`\\f1\\b0(?:[^0-9A-Za-z]|$)`)
	italicStart = regexp.MustCompile(`\\f2\\i(?:[^0-9A-Za-z]|$)`)
	italicEnd   = regexp.MustCompile(`\\f1\\i0(?:[^0-9A-Za-z]|$)`)

	// Stage 4: escape sequences substituted for literal characters.
	unicodeEscape = regexp.MustCompile(`\\uc0\\u(\d+) ?`)
	hexEscape     = regexp.MustCompile(`\\'([0-9a-fA-F]{2})`)

	// Stage 5: any remaining control word, with optional signed numeric
	// parameter and delimiter space.
	residualControl = regexp.MustCompile(`\\[a-zA-Z]+-?\d* ?`)
)

// literalControlWords maps punctuation control words to the characters they
// stand for. \line is an explicit in-paragraph break.
var literalControlWords = []struct {
	pattern *regexp.Regexp
	literal string
}{
	{regexp.MustCompile(`\\ldblquote\b ?`), "“"},
	{regexp.MustCompile(`\\rdblquote\b ?`), "”"},
	{regexp.MustCompile(`\\lquote\b ?`), "‘"},
	{regexp.MustCompile(`\\rquote\b ?`), "’"},
	{regexp.MustCompile(`\\emdash\b ?`), "—"},
	{regexp.MustCompile(`\\endash\b ?`), "–"},
	{regexp.MustCompile(`\\tab\b ?`), " "},
	{regexp.MustCompile(`\\line\b ?`), "\n"},
}

// unicodeEscapeTable is the fixed translation table for \uc0\uN escapes.
// Escapes outside the table are dropped without emitting a literal.
var unicodeEscapeTable = map[int]string{
	8377: "₹",  // rupee sign
	8232: "\n", // line separator
}

// stripPreamble removes the format declaration, font table, color tables
// and page geometry. These contribute zero characters to the output.
func stripPreamble(content string) string {
	content = rtfDeclaration.ReplaceAllString(content, "")
	content = cocoaDeclaration.ReplaceAllString(content, "")
	content = fontTable.ReplaceAllString(content, "")
	content = colorTable.ReplaceAllString(content, "")
	content = expandedColorTable.ReplaceAllString(content, "")
	content = pageGeometry.ReplaceAllString(content, "")
	content = tabDefault.ReplaceAllString(content, "")
	return content
}

// markParagraphBreaks replaces each paragraph-reset marker with a break
// sentinel on its own line. Reset markers are the authoritative boundary
// signal; blank-line evidence is handled later during assembly and agrees
// with the sentinels by construction.
func markParagraphBreaks(content string) string {
	content = paragraphDefaults.ReplaceAllString(content, "")
	content = paragraphReset.ReplaceAllString(content, "\n"+paragraphBreak+"\n")
	return content
}

// markEmphasis rewrites the font-switch combinations that signal bold or
// italic into in-band markers. A start marker consumes its delimiter space
// so no artificial gap opens inside the emphasized run; an end marker keeps
// the delimiter so adjacent words stay separated.
func markEmphasis(content string) string {
	content = replaceEmphasis(content, boldStart, markBoldOn, true)
	content = replaceEmphasis(content, boldEnd, markBoldOff, false)
	content = replaceEmphasis(content, italicStart, markItalicOn, true)
	content = replaceEmphasis(content, italicEnd, markItalicOff, false)
	return content
}

// replaceEmphasis swaps a font-switch match for the given marker rune. The
// match's final character is the delimiter that terminated the control word;
// it is dropped when it is the consumable delimiter space of a start marker
// and re-emitted otherwise (it may open the next control word).
func replaceEmphasis(content string, pattern *regexp.Regexp, marker rune, eatSpace bool) string {
	return pattern.ReplaceAllStringFunc(content, func(m string) string {
		last := m[len(m)-1]
		switch {
		case isAlnum(last):
			// Match ended at end-of-input; no delimiter was captured.
			return string(marker)
		case last == ' ' && eatSpace:
			return string(marker)
		default:
			return string(marker) + string(last)
		}
	})
}

func isAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// substituteEscapes applies the fixed special-character table: \uc0\uN
// escapes, code-page hex escapes, and punctuation control words. Escaped
// literal delimiters are parked behind placeholder runes so the residual
// stage cannot mistake them for structure.
func substituteEscapes(content string, cp codePage) string {
	content = strings.ReplaceAll(content, `\\`, string(placeholderBackslash))
	content = strings.ReplaceAll(content, `\{`, string(placeholderOpenBrace))
	content = strings.ReplaceAll(content, `\}`, string(placeholderCloseBrace))

	content = unicodeEscape.ReplaceAllStringFunc(content, func(m string) string {
		sub := unicodeEscape.FindStringSubmatch(m)
		return lookupUnicodeEscape(sub[1])
	})

	content = hexEscape.ReplaceAllStringFunc(content, func(m string) string {
		sub := hexEscape.FindStringSubmatch(m)
		return decodeHexEscape(sub[1], cp)
	})

	for _, lw := range literalControlWords {
		content = lw.pattern.ReplaceAllString(content, lw.literal)
	}
	return content
}

// stripResidualControls deletes whatever control markup survived the earlier
// stages. Control words become a single space so adjacent words do not merge;
// grouping braces vanish without whitespace. Any leftover literal backslash
// is treated as a line-break signal, a fragile source convention: the input
// is flagged for review rather than silently accepted.
func stripResidualControls(content string) (string, []string) {
	var notes []string

	content = residualControl.ReplaceAllString(content, " ")
	content = strings.ReplaceAll(content, "{", "")
	content = strings.ReplaceAll(content, "}", "")

	if n := strings.Count(content, `\`); n > 0 {
		notes = append(notes, fmt.Sprintf(
			"treated %d stray escape character(s) as line breaks; output needs review", n))
		content = strings.ReplaceAll(content, `\`, "\n")
	}

	content = strings.ReplaceAll(content, string(placeholderBackslash), `\`)
	content = strings.ReplaceAll(content, string(placeholderOpenBrace), "{")
	content = strings.ReplaceAll(content, string(placeholderCloseBrace), "}")
	return content, notes
}
