package i18n

import (
	"testing"

	"github.com/automoto/arcadeshell/config"
	"golang.org/x/text/language"
)

func initEnglish(t *testing.T) {
	t.Helper()
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
}

func TestEveryConfiguredLabelResolves(t *testing.T) {
	initEnglish(t)

	var keys []string
	keys = append(keys, config.Menu.EntryLabels...)
	for _, hint := range config.Menu.Hints.All() {
		keys = append(keys, hint...)
	}
	keys = append(keys, config.GameOver.EntryLabels...)
	keys = append(keys, "GameOverTitle", "HowToTitle", "HowToBody", "CreditsTitle", "CreditsBody", "InfoBack")

	for _, tag := range Languages() {
		SetLanguage(tag)
		for _, k := range keys {
			if !Has(k) {
				t.Errorf("%s: missing %q", tag, k)
			}
		}
	}
}

func TestMenuLabelsInOrder(t *testing.T) {
	initEnglish(t)
	got := Strings(config.Menu.EntryLabels)
	want := []string{"Start", "How to Play", "Credits"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for n := range want {
		if got[n] != want[n] {
			t.Errorf("label %d = %q, want %q", n, got[n], want[n])
		}
	}
}

func TestSpanishWithEnglishFallback(t *testing.T) {
	initEnglish(t)
	if err := SetWithCode("es"); err != nil {
		t.Fatalf("SetWithCode: %v", err)
	}
	if Language() != language.Spanish {
		t.Fatalf("Language() = %s", Language())
	}
	if got := GetString("MenuStart"); got != "Jugar" {
		t.Fatalf("MenuStart = %q, want Jugar", got)
	}
	if err := SetWithCode("not a tag!"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMissingKeyReturnsKey(t *testing.T) {
	initEnglish(t)
	if got := GetString("NoSuchKey"); got != "NoSuchKey" {
		t.Fatalf("GetString = %q", got)
	}
	if Has("NoSuchKey") {
		t.Fatalf("Has(NoSuchKey) = true")
	}
}

func TestPluralAndTemplate(t *testing.T) {
	initEnglish(t)
	if got := GetPluralString("GameOverSurvived", 1, map[string]interface{}{"Seconds": 1}); got != "You survived 1 second" {
		t.Errorf("one = %q", got)
	}
	if got := GetPluralString("GameOverSurvived", 12, map[string]interface{}{"Seconds": 12}); got != "You survived 12 seconds" {
		t.Errorf("other = %q", got)
	}
	if got := GetStringWithData("HUDTime", map[string]interface{}{"Seconds": 3}); got != "Time: 3s" {
		t.Errorf("HUDTime = %q", got)
	}
}
