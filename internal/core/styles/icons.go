package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconMap    = "\U000F034D"
	IconHome   = "\U000F02DC"
	IconLayers = "\U000F0F58"
	IconZoom   = "\U000F0349"
	IconCursor = "\U000F01BF"
)
