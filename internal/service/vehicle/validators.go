package vehicle

import "strings"

func isValidPlateNumber(plate string) bool {
	return strings.TrimSpace(plate) != ""
}

func isValidVehicleType(vehicleType string) bool {
	switch vehicleType {
	case "motorbike", "van", "truck":
		return true
	default:
		return false
	}
}
