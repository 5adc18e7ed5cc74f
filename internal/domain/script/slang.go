package script

import (
	"regexp"
	"strings"
	"unicode"
)

type slangRule struct {
	english string
	naija   string
}

// Applied in order; longer phrases come before the words they contain.
var slangRules = []slangRule{
	{"high value man", "Odogwu"},
	{"high-value man", "Odogwu"},
	{"top man", "Top Man"},
	{"breakup", "breakfast"},
	{"break up", "breakfast"},
	{"broke up", "give breakfast"},
	{"financial struggle", "Sapa"},
	{"struggling financially", "dey for Sapa"},
	{"being scammed", "Maga"},
	{"scammed", "Maga"},
	{"used", "Spare Tire"},
	{"social media clout", "Wash"},
	{"clout", "Packaging"},
	{"controversial plan", "Format"},
	{"scheme", "Update"},
	{"don't back down", "No Gree For Anybody"},
	{"stand your ground", "No Gree For Anybody"},
	{"stay wise", "Stay Woke"},
	{"be smart", "Eye Don Open"},
	{"dollars", "Naira"},
	{"$", "N"},
	{"relationship", "situationship"},
	{"modern woman", "Slay Queen"},
	{"independent woman", "Boss Lady"},
	{"sigma male", "Original Man"},
	{"alpha male", "Odogwu"},
}

type replacer struct {
	re   *regexp.Regexp
	repl string
}

var slangReplacers = compileSlang()

func compileSlang() []replacer {
	out := make([]replacer, 0, len(slangRules)*3)
	for _, r := range slangRules {
		variants := [][2]string{
			{r.english, r.naija},
			{capitalize(r.english), r.naija},
			{strings.ToUpper(r.english), strings.ToUpper(r.naija)},
		}
		for _, v := range variants {
			out = append(out, replacer{re: wordPattern(v[0]), repl: v[1]})
		}
	}
	return out
}

// wordPattern matches phrase on word boundaries where the phrase starts or
// ends with a word character, so "used" leaves "caused" alone.
func wordPattern(phrase string) *regexp.Regexp {
	p := regexp.QuoteMeta(phrase)
	rs := []rune(phrase)
	if isWord(rs[0]) {
		p = `\b` + p
	}
	if isWord(rs[len(rs)-1]) {
		p += `\b`
	}
	return regexp.MustCompile(p)
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	rs := []rune(strings.ToLower(s))
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}

// ApplySlang rewrites English phrases into Naija slang. Each phrase is tried
// as written, Capitalized and UPPER CASE.
func ApplySlang(text string) string {
	for _, r := range slangReplacers {
		text = r.re.ReplaceAllLiteralString(text, r.repl)
	}
	return text
}
