package order

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}

func isValidParcelType(parcelType string) bool {
	switch parcelType {
	case "document", "standard", "fragile", "frozen":
		return true
	default:
		return false
	}
}

func isValidPaymentMethod(method string) bool {
	switch method {
	case "cash", "bank_transfer", "e_wallet":
		return true
	default:
		return false
	}
}
