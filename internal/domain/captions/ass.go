// Package captions renders the scene dialogue as a karaoke ASS track timed to
// the fixed scene slots.
package captions

import (
	"fmt"
	"strings"
	"time"

	"github.com/forPelevin/naijavibe/internal/types"
)

const (
	slot = types.SceneSeconds * time.Second
	// lead is the pause before a line starts inside its slot.
	lead    = 200 * time.Millisecond
	minWord = 250 * time.Millisecond

	charBudget = 32
	wordBudget = 6
)

type word struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

type line struct {
	Start time.Duration
	End   time.Duration
	Words []word
}

// RenderASS returns a complete ASS document. Silent scenes produce no events.
func RenderASS(scenes []types.SceneBundle) string {
	var lines []line
	for i, s := range scenes {
		words := timeWords(s.Dialogue, s.EstimatedSpeechSeconds, time.Duration(i)*slot)
		if len(words) == 0 {
			continue
		}
		lines = append(lines, packWords(words)...)
	}
	return renderKaraoke(lines)
}

// timeWords spreads the words evenly over the estimated speech time, kept
// inside the slot that starts at slotStart.
func timeWords(dialogue string, speechSeconds float64, slotStart time.Duration) []word {
	fields := strings.Fields(dialogue)
	if len(fields) == 0 {
		return nil
	}
	span := time.Duration(speechSeconds * float64(time.Second))
	if floor := time.Duration(len(fields)) * minWord; span < floor {
		span = floor
	}
	if max := slot - lead; span > max {
		span = max
	}
	step := span / time.Duration(len(fields))

	out := make([]word, 0, len(fields))
	at := slotStart + lead
	for _, f := range fields {
		text := sanitize(f)
		if text == "" {
			at += step
			continue
		}
		out = append(out, word{Start: at, End: at + step, Text: text})
		at += step
	}
	return out
}

func packWords(words []word) []line {
	var out []line
	cur := line{Start: words[0].Start}
	curLen := 0
	for i, w := range words {
		wl := len([]rune(w.Text))
		nextLen := curLen
		if curLen > 0 {
			nextLen++
		}
		nextLen += wl
		if len(cur.Words) > 0 && (len(cur.Words) >= wordBudget || nextLen > charBudget) {
			cur.End = cur.Words[len(cur.Words)-1].End
			out = append(out, cur)
			cur = line{Start: w.Start}
			curLen = 0
		}
		cur.Words = append(cur.Words, w)
		if curLen > 0 {
			curLen++
		}
		curLen += wl
		if i == len(words)-1 {
			cur.End = w.End
			out = append(out, cur)
		}
	}
	return out
}

func renderKaraoke(lines []line) string {
	var b strings.Builder
	b.WriteString(header())
	b.WriteString("\n\n[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for _, ln := range lines {
		b.WriteString("Dialogue: 0,")
		b.WriteString(assTime(ln.Start))
		b.WriteString(",")
		b.WriteString(assTime(ln.End))
		b.WriteString(",Naija,,0,0,0,,")
		parts := make([]string, 0, len(ln.Words))
		for _, w := range ln.Words {
			cs := int((w.End - w.Start) / (10 * time.Millisecond))
			if cs < 1 {
				cs = 1
			}
			parts = append(parts, fmt.Sprintf("{\\k%d}%s", cs, w.Text))
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}
	return b.String()
}

// header targets a 1080x1920 vertical frame.
func header() string {
	return strings.TrimSpace(`
[Script Info]
ScriptType: v4.00+
PlayResX: 1080
PlayResY: 1920
ScaledBorderAndShadow: yes

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Naija, Inter, 72, &H00FFFFFF, &H0000D7FF, &H00000000, &H64000000, 1,0,0,0,100,100,0,0,1,6,2,2, 60,60,320,1
`)
}

func assTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hs := int(d / time.Hour)
	d -= time.Duration(hs) * time.Hour
	ms := int(d / time.Minute)
	d -= time.Duration(ms) * time.Minute
	s := int(d / time.Second)
	d -= time.Duration(s) * time.Second
	cs := int(d / (10 * time.Millisecond))
	return fmt.Sprintf("%d:%02d:%02d.%02d", hs, ms, s, cs)
}

func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "{", "(")
	s = strings.ReplaceAll(s, "}", ")")
	return strings.TrimSpace(s)
}
