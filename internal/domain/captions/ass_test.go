package captions

import (
	"strings"
	"testing"
	"time"

	"github.com/forPelevin/naijavibe/internal/types"
)

func TestRenderASS_SlotsAndKaraoke(t *testing.T) {
	ass := RenderASS([]types.SceneBundle{
		{SceneID: 1, Dialogue: "Payment deadline dey reach", EstimatedSpeechSeconds: 1.6},
		{SceneID: 2, Dialogue: "   "},
		{SceneID: 3, Dialogue: "Which {money}?", EstimatedSpeechSeconds: 0.8},
	})

	if !strings.Contains(ass, "PlayResY: 1920") {
		t.Fatalf("expected vertical frame header")
	}
	if got := strings.Count(ass, "Dialogue: 0,"); got != 2 {
		t.Fatalf("expected 2 events, got %d:\n%s", got, ass)
	}
	if !strings.Contains(ass, "Dialogue: 0,0:00:00.20,0:00:01.80,Naija,,0,0,0,,{\\k40}Payment") {
		t.Fatalf("unexpected first event:\n%s", ass)
	}
	// Third scene starts in the 14s slot.
	if !strings.Contains(ass, "Dialogue: 0,0:00:14.20,") {
		t.Fatalf("expected third scene in its slot:\n%s", ass)
	}
	if strings.Contains(ass, "{money}") || !strings.Contains(ass, "(money)?") {
		t.Fatalf("expected braces to be sanitized:\n%s", ass)
	}
}

func TestTimeWords_StaysInsideSlot(t *testing.T) {
	long := strings.Repeat("word ", 40)
	words := timeWords(long, 16, 7*time.Second)
	if len(words) != 40 {
		t.Fatalf("expected 40 words, got %d", len(words))
	}
	if end := words[len(words)-1].End; end > 14*time.Second {
		t.Fatalf("last word ends after the slot: %s", end)
	}
	if words[0].Start != 7*time.Second+lead {
		t.Fatalf("unexpected first word start %s", words[0].Start)
	}
}

func TestPackWords_Budgets(t *testing.T) {
	words := timeWords("one two three four five six seven", 3, 0)
	lines := packWords(words)
	if len(lines) != 2 || len(lines[0].Words) != wordBudget {
		t.Fatalf("unexpected packing: %+v", lines)
	}
	if lines[1].End != words[len(words)-1].End {
		t.Fatalf("last line should end with the last word")
	}
}

func TestAssTime_Format(t *testing.T) {
	if got := assTime(61*time.Second + 234*time.Millisecond); got != "0:01:01.23" {
		t.Fatalf("unexpected assTime: %s", got)
	}
}
