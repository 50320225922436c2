package domain

// PageType classifies the content of an extracted bill page.
type PageType string

const (
	PageTypeBillDetail PageType = "Bill Detail"
	PageTypeFinalBill  PageType = "Final Bill"
	PageTypePharmacy   PageType = "Pharmacy"
)

// KnownPageTypes lists the page classifications the extraction prompt asks for.
var KnownPageTypes = map[PageType]bool{
	PageTypeBillDetail: true,
	PageTypeFinalBill:  true,
	PageTypePharmacy:   true,
}

// SupportedImageFormats maps decoded image format names (as reported by the
// stdlib image registry) to their MIME content types.
var SupportedImageFormats = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
}
