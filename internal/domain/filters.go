package domain

// FilterRecord captures the structured selections a user makes in the studio
// UI before requesting a generation. Every field except ProductType is
// optional; absent values fall back to documented defaults inside the prompt
// builder rather than being rejected here.
type FilterRecord struct {
	ProductType string `json:"productType"`

	// ModelType is free-form but recognized tokens encode gender
	// (female/male/kids/mannequin) optionally combined with an ethnicity
	// token (asian/caucasian/indian), e.g. "female-asian".
	ModelType string `json:"modelType"`

	BodyType  string  `json:"bodyType"`
	SkinTone  string  `json:"skinTone"`
	HairType  string  `json:"hairType"`
	HairColor string  `json:"hairColor"`
	Height    float64 `json:"height"` // cm
	Weight    float64 `json:"weight"` // kg

	Background string `json:"background"`
	Lighting   string `json:"lighting"`
	Angle      string `json:"angle"`
	Mood       string `json:"mood"`

	// Enhancement sliders, each 0..100. Zero means "not set".
	BackgroundBlur  float64 `json:"backgroundBlur"`
	ShadowIntensity float64 `json:"shadowIntensity"`
	Sharpness       float64 `json:"sharpness"`

	ColorGrading  string `json:"colorGrading"`
	AIEnhancement bool   `json:"aiEnhancement"`
}

// Recognized product type keys. Anything else falls into the generic branch.
const (
	ProductSaree    = "saree"
	ProductHandbag  = "handbag"
	ProductFootwear = "footwear"
	ProductJewelry  = "jewelry"
	ProductGadget   = "gadget"
)
