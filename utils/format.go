package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idrPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount in rupiah with Indonesian thousands
// grouping and no decimal places, e.g. 105000 -> "Rp 105.000".
func FormatIDR(amount int) string {
	return idrPrinter.Sprintf("Rp %d", amount)
}
