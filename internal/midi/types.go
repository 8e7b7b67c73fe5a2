package midi

// DeviceType represents the type of grid controller
type DeviceType string

const (
	DeviceTypeClassic  DeviceType = "classic"  // Launchpad S - red/green LEDs, no programmer mode
	DeviceTypeColorful DeviceType = "colorful" // Launchpad Mini Mk3 - RGB via SysEx
	DeviceTypeGeneric  DeviceType = "generic"  // plain note/CC controller, no LEDs
)

// Grid dimensions shared by every device, including the top row and the
// right-hand column
const (
	GridRows = 9
	GridCols = 9
)

// PadColor represents an RGB color for a pad
type PadColor struct {
	R, G, B uint8 // 0-127 for each channel
}

// PadIndex returns the button id of a grid position
func PadIndex(row, col int) int {
	return row*GridCols + col
}

// PadPosition returns the grid position of a button id
func PadPosition(id int) (row, col int) {
	return id / GridCols, id % GridCols
}
