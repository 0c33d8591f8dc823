package voice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileResolutionOrder(t *testing.T) {
	v := &BrandVoice{
		Pillars:   &Pillars{Personality: 9, Formality: 9, Enthusiasm: 9, Authority: 9},
		ToneScore: 2,
	}

	// Explicit override beats everything.
	out := Compile(v, "playful but apologetic", 1)
	assert.Contains(t, out.ToneDirectives, "playful but apologetic")
	assert.NotContains(t, out.ToneDirectives, "witty")

	// Pillars beat the legacy score.
	out = Compile(v, "", 1)
	assert.Contains(t, out.ToneDirectives, "witty")
	assert.NotContains(t, out.ToneDirectives, "formal and polished")

	// Legacy score used when pillars absent.
	out = Compile(&BrandVoice{ToneScore: 2}, "", 5)
	assert.Contains(t, out.ToneDirectives, "formal and polished")

	// Rating default when nothing configured.
	out = Compile(nil, "", 5)
	assert.Contains(t, out.ToneDirectives, "grateful and professional")
	out = Compile(nil, "", 2)
	assert.Contains(t, out.ToneDirectives, "empathetic, apologetic, and professional")
}

func TestCompileZeroPillarsTreatedAsAbsent(t *testing.T) {
	v := &BrandVoice{Pillars: &Pillars{}, ToneScore: 9}
	out := Compile(v, "", 3)
	assert.Contains(t, out.ToneDirectives, "witty and bold")
}

func TestPillarBands(t *testing.T) {
	tests := []struct {
		name    string
		pillars Pillars
		want    string
	}{
		{"formality low allows slang", Pillars{Personality: 5, Formality: 2, Enthusiasm: 5, Authority: 5}, "slang"},
		{"formality high bans contractions", Pillars{Personality: 5, Formality: 8, Enthusiasm: 5, Authority: 5}, "do not use contractions"},
		{"enthusiasm low avoids exclamation", Pillars{Personality: 5, Formality: 5, Enthusiasm: 1, Authority: 5}, "avoid exclamation marks"},
		{"authority high references expertise", Pillars{Personality: 5, Formality: 5, Enthusiasm: 5, Authority: 10}, "expert advisor"},
		{"band edges: 3 is low", Pillars{Personality: 3, Formality: 5, Enthusiasm: 5, Authority: 5}, "serious and matter-of-fact"},
		{"band edges: 4 is mid", Pillars{Personality: 4, Formality: 5, Enthusiasm: 5, Authority: 5}, "light warmth"},
		{"band edges: 8 is high", Pillars{Personality: 8, Formality: 5, Enthusiasm: 5, Authority: 5}, "witty and playful"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Compile(&BrandVoice{Pillars: &tt.pillars}, "", 5)
			assert.Contains(t, strings.ToLower(out.ToneDirectives), tt.want)
		})
	}
}

func TestEmojiPolicyNoneBeatsHighEnthusiasm(t *testing.T) {
	v := &BrandVoice{
		Pillars:       &Pillars{Personality: 5, Formality: 5, Enthusiasm: 10, Authority: 5},
		VoiceSettings: Settings{EmojiPolicy: "none"},
	}
	out := Compile(v, "", 5)

	assert.NotContains(t, out.ToneDirectives, "add 1-2 fitting emojis")
	assert.Contains(t, out.ToneDirectives, "exclamation marks")
	assert.Contains(t, out.HardConstraints, "Do not use emojis under any circumstances.")
}

func TestEmojiMandatedWhenPolicyAllows(t *testing.T) {
	v := &BrandVoice{
		Pillars:       &Pillars{Personality: 5, Formality: 5, Enthusiasm: 10, Authority: 5},
		VoiceSettings: Settings{EmojiPolicy: "expressive"},
	}
	out := Compile(v, "", 5)
	assert.Contains(t, out.ToneDirectives, "emojis")
	assert.Empty(t, out.HardConstraints)
}

func TestPerspectiveConstraint(t *testing.T) {
	for perspective, want := range map[string]string{
		"first":      `"I"`,
		"collective": `"we"`,
		"third":      "third person",
	} {
		v := &BrandVoice{VoiceSettings: Settings{Perspective: perspective}}
		out := Compile(v, "", 5)
		found := false
		for _, c := range out.HardConstraints {
			if strings.Contains(c, want) {
				found = true
			}
		}
		assert.True(t, found, "perspective %q missing constraint", perspective)
	}
}

func TestBannedVocabularyEmittedLast(t *testing.T) {
	v := &BrandVoice{
		VoiceSettings:    Settings{EmojiPolicy: "none", Perspective: "collective"},
		BannedVocabulary: []string{"cheap", "deal"},
	}
	out := Compile(v, "", 5)

	assert.NotEmpty(t, out.HardConstraints)
	last := out.HardConstraints[len(out.HardConstraints)-1]
	assert.Contains(t, last, "NEVER use")
	assert.Contains(t, last, "cheap, deal")
}

func TestOverrideStillAppliesHardConstraints(t *testing.T) {
	v := &BrandVoice{
		VoiceSettings:    Settings{EmojiPolicy: "none"},
		BannedVocabulary: []string{"guys"},
	}
	out := Compile(v, "cheerful", 5)
	assert.Contains(t, out.ToneDirectives, "cheerful")
	assert.Len(t, out.HardConstraints, 2)
}
