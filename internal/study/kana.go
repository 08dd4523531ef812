package study

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

var romajiToHiragana = map[string]string{
	"a": "あ", "i": "い", "u": "う", "e": "え", "o": "お",
	"ka": "か", "ki": "き", "ku": "く", "ke": "け", "ko": "こ",
	"kya": "きゃ", "kyu": "きゅ", "kyo": "きょ",
	"ga": "が", "gi": "ぎ", "gu": "ぐ", "ge": "げ", "go": "ご",
	"gya": "ぎゃ", "gyu": "ぎゅ", "gyo": "ぎょ",
	"sa": "さ", "shi": "し", "si": "し", "su": "す", "se": "せ", "so": "そ",
	"sha": "しゃ", "shu": "しゅ", "sho": "しょ", "she": "しぇ",
	"sya": "しゃ", "syu": "しゅ", "syo": "しょ",
	"za": "ざ", "ji": "じ", "zi": "じ", "zu": "ず", "ze": "ぜ", "zo": "ぞ",
	"ja": "じゃ", "ju": "じゅ", "jo": "じょ", "je": "じぇ",
	"jya": "じゃ", "jyu": "じゅ", "jyo": "じょ",
	"zya": "じゃ", "zyu": "じゅ", "zyo": "じょ",
	"ta": "た", "chi": "ち", "ti": "ち", "tsu": "つ", "tu": "つ", "te": "て", "to": "と",
	"cha": "ちゃ", "chu": "ちゅ", "cho": "ちょ", "che": "ちぇ",
	"cya": "ちゃ", "cyu": "ちゅ", "cyo": "ちょ",
	"tya": "ちゃ", "tyu": "ちゅ", "tyo": "ちょ",
	"da": "だ", "di": "ぢ", "du": "づ", "de": "で", "do": "ど",
	"dya": "ぢゃ", "dyu": "ぢゅ", "dyo": "ぢょ",
	"na": "な", "ni": "に", "nu": "ぬ", "ne": "ね", "no": "の",
	"nya": "にゃ", "nyu": "にゅ", "nyo": "にょ",
	"ha": "は", "hi": "ひ", "fu": "ふ", "hu": "ふ", "he": "へ", "ho": "ほ",
	"hya": "ひゃ", "hyu": "ひゅ", "hyo": "ひょ",
	"fa": "ふぁ", "fi": "ふぃ", "fe": "ふぇ", "fo": "ふぉ",
	"ba": "ば", "bi": "び", "bu": "ぶ", "be": "べ", "bo": "ぼ",
	"bya": "びゃ", "byu": "びゅ", "byo": "びょ",
	"pa": "ぱ", "pi": "ぴ", "pu": "ぷ", "pe": "ぺ", "po": "ぽ",
	"pya": "ぴゃ", "pyu": "ぴゅ", "pyo": "ぴょ",
	"ma": "ま", "mi": "み", "mu": "む", "me": "め", "mo": "も",
	"mya": "みゃ", "myu": "みゅ", "myo": "みょ",
	"ya": "や", "yu": "ゆ", "yo": "よ",
	"ra": "ら", "ri": "り", "ru": "る", "re": "れ", "ro": "ろ",
	"rya": "りゃ", "ryu": "りゅ", "ryo": "りょ",
	"wa": "わ", "wo": "を",
	"vu": "ゔ",
	"xa": "ぁ", "xi": "ぃ", "xu": "ぅ", "xe": "ぇ", "xo": "ぉ",
	"xya": "ゃ", "xyu": "ゅ", "xyo": "ょ",
	"xtu": "っ", "xtsu": "っ", "ltu": "っ",
	"-": "ー",
}

const maxRomajiLength = 4

func isVowel(b byte) bool {
	return strings.IndexByte("aiueo", b) >= 0
}

func isConsonant(b byte) bool {
	return b >= 'a' && b <= 'z' && !isVowel(b)
}

// ToHiragana converts romaji and katakana in s to hiragana. Other characters are kept.
func ToHiragana(s string) string {
	s = strings.ToLower(width.Fold.String(s))

	var builder strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x80 {
			r, size := utf8.DecodeRuneInString(s[i:])
			builder.WriteRune(katakanaToHiragana(r))
			i += size
			continue
		}

		if c == 'n' {
			if consumed, ok := convertN(s[i:]); ok {
				builder.WriteString("ん")
				i += consumed
				continue
			}
		}
		if isConsonant(c) && c != 'n' && i+1 < len(s) && (s[i+1] == c || (c == 't' && s[i+1] == 'c')) {
			builder.WriteString("っ")
			i++
			continue
		}

		matched := false
		for length := min(maxRomajiLength, len(s)-i); length > 0; length-- {
			if kana, ok := romajiToHiragana[s[i:i+length]]; ok {
				builder.WriteString(kana)
				i += length
				matched = true
				break
			}
		}
		if !matched {
			builder.WriteByte(c)
			i++
		}
	}
	return builder.String()
}

// convertN reports whether the n at the start of s is ん and how many bytes it consumes.
func convertN(s string) (int, bool) {
	if len(s) == 1 {
		return 1, true
	}
	next := s[1]
	switch {
	case isVowel(next) || next == 'y':
		return 0, false
	case next == '\'':
		return 2, true
	case next == 'n':
		if len(s) > 2 && (isVowel(s[2]) || s[2] == 'y') {
			return 1, true
		}
		return 2, true
	default:
		return 1, true
	}
}

func katakanaToHiragana(r rune) rune {
	if r >= 'ァ' && r <= 'ヶ' {
		return r - ('ァ' - 'ぁ')
	}
	return r
}
