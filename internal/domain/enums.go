package domain

// HouseColor is the house a member belongs to.
type HouseColor string

const (
	HouseRed    HouseColor = "red"
	HouseBlue   HouseColor = "blue"
	HouseGreen  HouseColor = "green"
	HouseYellow HouseColor = "yellow"
)

// HouseColors lists the valid house colors.
var HouseColors = map[HouseColor]bool{
	HouseRed:    true,
	HouseBlue:   true,
	HouseGreen:  true,
	HouseYellow: true,
}

// KalamType identifies the recitation slot assigned to a group for an occasion.
type KalamType string

const (
	KalamSalam   KalamType = "Salam"
	KalamNoha    KalamType = "Noha"
	KalamMadeh   KalamType = "Madeh"
	KalamNaat    KalamType = "Naat"
	KalamNasihat KalamType = "Nasihat"
	KalamNoha2   KalamType = "Noha 2"
	KalamSalam2  KalamType = "Salam 2"
)

// KalamTypes lists the valid kalam types in display order.
var KalamTypes = []KalamType{
	KalamSalam,
	KalamNoha,
	KalamMadeh,
	KalamNaat,
	KalamNasihat,
	KalamNoha2,
	KalamSalam2,
}

// ValidKalamType reports whether t is a known kalam type.
func ValidKalamType(t KalamType) bool {
	for _, k := range KalamTypes {
		if k == t {
			return true
		}
	}
	return false
}

// AllowedImageTypes is the MIME allow-list for profile photo uploads. Only
// these content types may be presigned; everything else is rejected before
// any signing work happens.
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}
