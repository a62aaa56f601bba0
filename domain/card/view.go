package card

import "github.com/x-xyz/nftcard/base/ptr"

const (
	// RevealedCount is the number of owner address characters kept on each side
	RevealedCount = 4

	ClassCard      = "card"
	ClassThumbnail = "thumbnail"

	OwnerLabel = "Owned by"

	ellipsis = "..."
)

type Image struct {
	Class string `json:"class"`
	Src   string `json:"src"`
}

// View is the display tree of a single card
type View struct {
	Class      string `json:"class"`
	Image      Image  `json:"image"`
	Title      string `json:"title"`
	OwnerLabel string `json:"ownerLabel"`
	OwnerLine  string `json:"ownerLine"`
}

// ImageSource coalesces a missing and an empty image to "".
func ImageSource(m TokenMetadata) string {
	return ptr.StringValue(m.Image)
}

// ShortenOwner keeps RevealedCount characters from both ends of owner.
// Slice bounds are clamped, so owners shorter than 2*RevealedCount come back
// with overlapping characters instead of failing.
func ShortenOwner(owner string) string {
	runes := []rune(owner)
	n := len(runes)
	return string(runes[:clamp(RevealedCount, n)]) + ellipsis + string(runes[clamp(n-RevealedCount, n):])
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func NewView(r TokenRecord) View {
	return View{
		Class: ClassCard,
		Image: Image{
			Class: ClassThumbnail,
			Src:   ImageSource(r.Metadata),
		},
		Title:      r.Metadata.Name,
		OwnerLabel: OwnerLabel,
		OwnerLine:  ShortenOwner(string(r.Owner)),
	}
}
