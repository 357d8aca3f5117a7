// Package promptgen renders a FilterRecord into the natural-language
// instruction sent to the image model. The builder is a pure function:
// identical filters always yield byte-identical text, which is what lets the
// prompt act as a versioned contract with the model.
package promptgen

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bursana/internal/domain"
)

var titler = cases.Title(language.English)

// templateFn renders the opening instruction and product-specific
// constraints for one product category.
type templateFn func(f domain.FilterRecord, descriptor string) []string

var productTemplates = map[string]templateFn{
	domain.ProductSaree:    sareeTemplate,
	domain.ProductHandbag:  wearTemplate("handbag", "carrying"),
	domain.ProductFootwear: wearTemplate("footwear", "wearing"),
	domain.ProductJewelry:  wearTemplate("jewelry", "wearing"),
	domain.ProductGadget:   wearTemplate("gadget", "using"),
}

// BuildPrompt converts the structured filter selections into the instruction
// text for the generation model. It never fails; missing values degrade to
// documented defaults.
func BuildPrompt(f domain.FilterRecord) string {
	descriptor := ModelDescriptor(f.ModelType)

	lines := []string{openingLine(f.ProductType)}

	tmpl, ok := productTemplates[normalizeKey(f.ProductType)]
	if !ok {
		tmpl = wearTemplate(productLabel(f.ProductType), "holding")
	}
	lines = append(lines, tmpl(f, descriptor)...)

	if descriptor != "" {
		lines = append(lines, modelSection(f)...)
	}
	lines = append(lines, sceneSection(f)...)
	lines = append(lines, technicalSection(f)...)
	lines = append(lines, closingBlock...)

	return strings.Join(lines, "\n")
}

func openingLine(productType string) string {
	return fmt.Sprintf("Professional e-commerce product photography: %s showcase.", titler.String(productLabel(productType)))
}

func productLabel(productType string) string {
	label := strings.TrimSpace(productType)
	if label == "" {
		return "product"
	}
	return label
}

// wearTemplate builds the generic branch shared by every non-saree category:
// a model interacts with the exact uploaded product, or the product stands
// alone when no model was selected.
func wearTemplate(label, verb string) templateFn {
	return func(f domain.FilterRecord, descriptor string) []string {
		var lines []string
		if descriptor != "" {
			lines = append(lines, fmt.Sprintf("Show %s %s the EXACT %s from the uploaded image, integrated naturally into the scene.", descriptor, verb, label))
		} else {
			lines = append(lines, fmt.Sprintf("Display the EXACT %s from the uploaded image prominently, without a model.", label))
		}
		lines = append(lines, fidelityBlock(label)...)
		return lines
	}
}

func fidelityBlock(label string) []string {
	return []string{
		"CRITICAL REQUIREMENTS:",
		fmt.Sprintf("- The %s must match the uploaded image exactly: same color, same material, same hardware, same design details.", label),
		"- Do not invent, remove, or restyle any part of the product.",
		"- Blend the product into the scene with physically plausible contact, scale, and reflections.",
	}
}

func modelSection(f domain.FilterRecord) []string {
	var attrs []string
	if v := strings.TrimSpace(f.BodyType); v != "" {
		attrs = append(attrs, "- Build: "+phrase(bodyTypePhrases, v, "")+".")
	}
	if v := strings.TrimSpace(f.SkinTone); v != "" {
		attrs = append(attrs, "- Skin: "+phrase(skinTonePhrases, v, "")+".")
	}
	if hair := hairDescription(f); hair != "" {
		attrs = append(attrs, "- Hair: "+hair+".")
	}
	if f.Height > 0 {
		attrs = append(attrs, fmt.Sprintf("- Height: %.0f cm (%.1f in).", f.Height, f.Height/2.54))
	}
	if f.Weight > 0 {
		attrs = append(attrs, fmt.Sprintf("- Weight: %.0f kg (%.1f lb).", f.Weight, f.Weight*2.20462))
	}
	if len(attrs) == 0 {
		return nil
	}
	return append([]string{"MODEL SPECIFICATION:"}, attrs...)
}

func hairDescription(f domain.FilterRecord) string {
	hairType := strings.TrimSpace(f.HairType)
	hairColor := strings.TrimSpace(f.HairColor)
	switch {
	case hairType != "" && hairColor != "":
		return phrase(hairColorPhrases, hairColor, "") + " " + phrase(hairTypePhrases, hairType, "")
	case hairType != "":
		return phrase(hairTypePhrases, hairType, "")
	case hairColor != "":
		return phrase(hairColorPhrases, hairColor, "") + " hair"
	}
	return ""
}

func sceneSection(f domain.FilterRecord) []string {
	return []string{
		"Background: " + phrase(backgroundPhrases, f.Background, defaultBackground) + ".",
		"Lighting: " + phrase(lightingPhrases, f.Lighting, defaultLighting) + ".",
		"Camera angle: " + phrase(anglePhrases, f.Angle, defaultAngle) + ".",
		"Mood: " + phrase(moodPhrases, f.Mood, defaultMood) + ".",
	}
}

func technicalSection(f domain.FilterRecord) []string {
	var lines []string
	if s := bucketSentence(f.BackgroundBlur, blurSentences); s != "" {
		lines = append(lines, s)
	}
	if s := bucketSentence(f.ShadowIntensity, shadowSentences); s != "" {
		lines = append(lines, s)
	}
	if s := bucketSentence(f.Sharpness, sharpnessSentences); s != "" {
		lines = append(lines, s)
	}
	if v := strings.TrimSpace(f.ColorGrading); v != "" {
		lines = append(lines, "Color grading: "+phrase(colorGradingPhrases, v, "")+".")
	}
	if f.AIEnhancement {
		lines = append(lines, "Apply AI-powered enhancement: refine fine detail, remove noise, and balance exposure across the frame.")
	}
	return lines
}

// Slider buckets: below 30 is low, below 70 is mid, everything else high.
// Zero (or unset) emits nothing.
var blurSentences = [3]string{
	"Apply a subtle background blur that keeps a hint of depth separation.",
	"Apply a moderate background blur for clear subject separation.",
	"Apply a strong background blur with creamy bokeh so the product stands out.",
}

var shadowSentences = [3]string{
	"Use soft, barely visible shadows under the subject.",
	"Use balanced, natural shadows that ground the subject.",
	"Use deep, dramatic shadows for a high-contrast look.",
}

var sharpnessSentences = [3]string{
	"Apply gentle sharpening, preserving a soft photographic finish.",
	"Apply crisp sharpening across the subject's details.",
	"Apply maximum sharpness so every texture and edge is defined.",
}

func bucketSentence(value float64, sentences [3]string) string {
	switch {
	case value <= 0:
		return ""
	case value < 30:
		return sentences[0]
	case value < 70:
		return sentences[1]
	default:
		return sentences[2]
	}
}

var closingBlock = []string{
	"QUALITY REQUIREMENTS:",
	"- Ultra high resolution with tack-sharp focus on the product.",
	"- Professional e-commerce standard, commercial-ready for online stores and marketing.",
	"- The product remains the focal point of the composition.",
	"- Natural, relaxed posing with no distortion or artifacts.",
}
