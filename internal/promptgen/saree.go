package promptgen

import (
	"fmt"

	"bursana/internal/domain"
)

// sareeTemplate is the one branch with materially harder rules. Image models
// reliably mistake a saree for a shoulder-hung garment, so the female-model
// path pins down the draping with explicit positive constraints, enumerated
// forbidden outcomes, and a final self-check the model is asked to pass
// before emitting an image.
//
// For non-female models (and for product-only shots) the draping rules do
// not apply and the branch falls back to a plain accuracy instruction.
func sareeTemplate(f domain.FilterRecord, descriptor string) []string {
	if descriptor == "" || !isFemaleModel(f.ModelType) {
		return sareeSimple(descriptor)
	}

	return []string{
		fmt.Sprintf("Show %s wearing the EXACT saree from the uploaded image, draped in the traditional Indian style.", descriptor),
		"CRITICAL REQUIREMENTS:",
		"- The saree must match the uploaded image exactly: same fabric, same border, same colors and patterns.",
		"- A saree is a single piece of unstitched fabric wrapped around the body starting at the waist. It must NOT hang from the shoulders or the neck the way a stitched garment would.",
		"- 5-7 pleats must be clearly visible at the front waist, falling straight down.",
		"- The fabric must cover the lower body continuously from waist to ankle, with no gap in the drape.",
		"- The pallu, the loose decorated end of the fabric, must drape over the LEFT shoulder and flow toward the back.",
		"- A fitted blouse must be visible as a separate stitched garment worn under the saree.",
		"FORBIDDEN OUTCOMES:",
		"- Do NOT render the saree as a dress or a gown silhouette.",
		"- Do NOT show the fabric hanging from the shoulders like a scarf or a stole.",
		"- Do NOT wrap the fabric around the body like a wrap dress.",
		"Before producing the image, verify every answer below is yes:",
		"1. Does the drape start at the waist rather than the shoulders?",
		"2. Are 5-7 pleats visible at the front waist?",
		"3. Does the fabric reach the ankles?",
		"4. Is the pallu over the left shoulder?",
		"5. Is the blouse visible under the saree?",
		"Only produce the image once every check passes.",
	}
}

func sareeSimple(descriptor string) []string {
	var lines []string
	if descriptor != "" {
		lines = append(lines, fmt.Sprintf("Show %s presenting the EXACT saree from the uploaded image.", descriptor))
	} else {
		lines = append(lines, "Display the EXACT saree from the uploaded image prominently, without a model.")
	}
	return append(lines, fidelityBlock("saree")...)
}
