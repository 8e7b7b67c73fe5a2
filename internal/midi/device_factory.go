package midi

// GetDevice returns the Device implementation for the given type
func GetDevice(deviceType DeviceType) Device {
	switch deviceType {
	case DeviceTypeClassic:
		return &ClassicDevice{}
	case DeviceTypeGeneric:
		return &GenericDevice{}
	default:
		return &ColorfulDevice{}
	}
}
