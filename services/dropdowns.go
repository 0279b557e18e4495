package services

// GlassTypeOptions lists the glass types offered on a window line item.
var GlassTypeOptions = []string{
	"Tempered",
	"Laminated",
	"Frosted",
	"Clear",
}

// FrameMaterialOptions lists the frame materials offered on a window line item.
var FrameMaterialOptions = []string{
	"Aluminum",
	"Wood",
	"PVC",
}

// DefaultGlassType and DefaultFrameMaterial are applied to freshly added
// window line items.
const (
	DefaultGlassType     = "Tempered"
	DefaultFrameMaterial = "Aluminum"
)
