// Package symbol maps subnet display symbols, which may be any Unicode
// scalar, to strings that render safely in ordinary terminals.
package symbol

import (
	"fmt"
	"unicode/utf8"
)

// translations covers the symbols subnets actually register: the Greek
// alphabet, the Hebrew and Arabic alphabets, and one rune. Greek
// generally renders fine and maps to itself; Hebrew and Arabic are
// higher display risk and map to transliterations.
var translations = map[string]string{
	// Greek
	"Τ": "Τ (T)", // tau (root subnet)
	"α": "α",
	"β": "β",
	"γ": "γ",
	"δ": "δ",
	"ε": "ε",
	"ζ": "ζ",
	"η": "η",
	"θ": "θ",
	"ι": "ι",
	"κ": "κ",
	"λ": "λ",
	"μ": "μ",
	"ν": "ν",
	"ξ": "ξ",
	"ο": "ο",
	"π": "π",
	"ρ": "ρ",
	"σ": "σ",
	"τ": "τ",
	"υ": "υ",
	"φ": "φ",
	"χ": "χ",
	"ψ": "ψ",
	"ω": "ω",

	// Hebrew
	"א": "alef",
	"ב": "bet",
	"ג": "gimel",
	"ד": "dalet",
	"ה": "he",
	"ו": "vav",
	"ז": "zayin",
	"ח": "het",
	"ט": "tet",
	"י": "yod",
	"ך": "kaf-sofit",
	"כ": "kaf",
	"ל": "lamed",
	"ם": "mem-sofit",
	"מ": "mem",
	"ן": "nun-sofit",
	"נ": "nun",
	"ס": "samekh",
	"ע": "ayin",
	"ף": "pe-sofit",
	"פ": "pe",
	"ץ": "tsadi-sofit",
	"צ": "tsadi",
	"ק": "qof",
	"ר": "resh",
	"ש": "shin",
	"ת": "tav",

	// Arabic
	"ا": "alif",
	"ب": "ba",
	"ت": "ta",
	"ث": "tha",
	"ج": "jim",
	"ح": "ha",
	"خ": "kha",
	"د": "dal",
	"ذ": "dhal",
	"ر": "ra",
	"ز": "zay",
	"س": "sin",
	"ش": "shin",
	"ص": "sad",
	"ض": "dad",
	"ط": "ta",
	"ظ": "za",
	"ع": "ayn",
	"غ": "ghayn",
	"ف": "fa",
	"ق": "qaf",
	"ك": "kaf",
	"ل": "lam",
	"م": "mim",
	"ن": "nun",
	"ه": "ha",
	"و": "waw",
	"ي": "ya",
	"ى": "alif",

	// Other
	"ᚠ": "fehu", // rune
}

// Sanitize returns a terminal-safe representation of a subnet symbol.
// Empty and sentinel input passes through; Hebrew and Arabic single
// runes always resolve via the translation table; anything that is
// valid UTF-8 passes through; the rest degrades to the table entry, a
// U+XXXX codepoint form, or a "?" placeholder.
func Sanitize(s string) string {
	if s == "" || s == "Unknown" {
		return s
	}

	if r, size := utf8.DecodeRuneInString(s); size == len(s) && r >= 0x0590 && r <= 0x06FF {
		if t, ok := translations[s]; ok {
			return t
		}
		return s
	}

	if utf8.ValidString(s) {
		return s
	}

	if t, ok := translations[s]; ok {
		return t
	}

	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return fmt.Sprintf("U+%04X", r)
	}

	return "?"
}
