package voice

import "strings"

// Pillars is the granular 4-dial brand voice model, each dial 1-10.
type Pillars struct {
	Personality int `json:"personality"` // serious -> witty
	Formality   int `json:"formality"`   // casual -> formal
	Enthusiasm  int `json:"enthusiasm"`  // calm -> excited
	Authority   int `json:"authority"`   // humble -> expert
}

type Settings struct {
	EmojiPolicy  string `json:"emojiPolicy"`  // none | professional | expressive
	Perspective  string `json:"perspective"`  // first | collective | third
	GeoIntensity string `json:"geoIntensity"` // off | subtle | aggressive
	SignOffStyle string `json:"signOffStyle"` // standard | cta | personal
}

// BrandVoice is the single per-business voice record. The granular pillar
// model supersedes the legacy ToneScore when both are present.
type BrandVoice struct {
	Pillars          *Pillars `json:"pillars,omitempty"`
	VoiceSettings    Settings `json:"voiceSettings"`
	BannedVocabulary []string `json:"bannedVocabulary,omitempty"`

	// Legacy simplified model: a single 1-10 dial.
	ToneScore int `json:"tone_score,omitempty"`
}

// Compiled is the output of Compile: tone directives for the prompt body and
// hard constraints, the strongest instruction class, emitted after everything
// else.
type Compiled struct {
	ToneDirectives  string
	HardConstraints []string
}

// hasPillars reports whether the granular model is actually configured.
func (v *BrandVoice) hasPillars() bool {
	if v == nil || v.Pillars == nil {
		return false
	}
	p := v.Pillars
	return p.Personality > 0 || p.Formality > 0 || p.Enthusiasm > 0 || p.Authority > 0
}

// Compile resolves the tone configuration into prompt directives.
// Resolution order: explicit override > granular pillars > legacy tone score >
// star-rating default.
func Compile(v *BrandVoice, override string, starRating int) Compiled {
	var out Compiled

	switch {
	case strings.TrimSpace(override) != "":
		out.ToneDirectives = "- Tone: " + strings.TrimSpace(override) + "."
	case v.hasPillars():
		out.ToneDirectives = strings.Join(pillarDirectives(v.Pillars, v.VoiceSettings.EmojiPolicy), "\n")
	case v != nil && v.ToneScore > 0:
		out.ToneDirectives = "- " + legacyToneDirective(v.ToneScore)
	default:
		out.ToneDirectives = "- Tone: " + ratingDefaultTone(starRating) + "."
	}

	// Hard overrides are applied after pillar resolution: policy beats pillar.
	if v != nil {
		if v.VoiceSettings.EmojiPolicy == "none" {
			out.HardConstraints = append(out.HardConstraints, "Do not use emojis under any circumstances.")
		}
		if c := perspectiveConstraint(v.VoiceSettings.Perspective); c != "" {
			out.HardConstraints = append(out.HardConstraints, c)
		}
		if len(v.BannedVocabulary) > 0 {
			out.HardConstraints = append(out.HardConstraints,
				"NEVER use the following words or phrases: "+strings.Join(v.BannedVocabulary, ", ")+".")
		}
	}

	return out
}

// band maps a 1-10 dial onto the three discrete bands.
func band(score int) string {
	switch {
	case score <= 3:
		return "low"
	case score <= 7:
		return "mid"
	default:
		return "high"
	}
}

func pillarDirectives(p *Pillars, emojiPolicy string) []string {
	directives := make([]string, 0, 4)

	switch band(p.Personality) {
	case "low":
		directives = append(directives, "- Keep the writing serious and matter-of-fact; no jokes or wordplay.")
	case "mid":
		directives = append(directives, "- Allow light warmth and personality, but stay grounded.")
	case "high":
		directives = append(directives, "- Be witty and playful; a tasteful joke or wordplay is welcome.")
	}

	switch band(p.Formality) {
	case "low":
		directives = append(directives, "- Write casually; slang and lowercase sentence openers are allowed.")
	case "mid":
		directives = append(directives, "- Use a relaxed but tidy register.")
	case "high":
		directives = append(directives, "- Use formal English; do not use contractions.")
	}

	switch band(p.Enthusiasm) {
	case "low":
		directives = append(directives, "- Keep the energy calm and measured; avoid exclamation marks.")
	case "mid":
		directives = append(directives, "- Sound warm and upbeat.")
	case "high":
		// High enthusiasm normally mandates emojis, unless policy forbids them.
		if emojiPolicy == "none" {
			directives = append(directives, "- Be visibly excited and lean on exclamation marks, but without any emojis.")
		} else {
			directives = append(directives, "- Be visibly excited: use exclamation marks and add 1-2 fitting emojis.")
		}
	}

	switch band(p.Authority) {
	case "low":
		directives = append(directives, "- Stay humble and grateful; let the customer be the expert.")
	case "mid":
		directives = append(directives, "- Sound confident about the business and its craft.")
	case "high":
		directives = append(directives, "- Write as the expert advisor: reference expertise and credentials where relevant.")
	}

	return directives
}

func legacyToneDirective(score int) string {
	switch {
	case score <= 3:
		return "Tone: formal and polished; keep emoji use minimal."
	case score <= 7:
		return "Tone: warm, friendly and community-minded."
	default:
		return "Tone: witty and bold."
	}
}

func ratingDefaultTone(starRating int) string {
	if starRating >= 4 {
		return "grateful and professional"
	}
	return "empathetic, apologetic, and professional"
}

func perspectiveConstraint(perspective string) string {
	switch perspective {
	case "first":
		return `Write in the first person singular ("I").`
	case "collective":
		return `Write as "we".`
	case "third":
		return "Write in the third person, referring to the business by name."
	default:
		return ""
	}
}
