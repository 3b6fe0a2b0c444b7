package models

// BusinessInfo is the static identity block printed on every invoice.
type BusinessInfo struct {
	Name      string
	Tagline   string
	Address   string
	City      string
	Email     string
	Phone     string
	WifiPass  string
	Instagram string
}

var Business = BusinessInfo{
	Name:      "PAYPYA Cafe & Resto",
	Tagline:   "Cafe & Resto",
	Address:   "Jl. Jend. Sudirman Kav. 52-53, SCBD",
	City:      "Jakarta Selatan, 12190",
	Email:     "hello@paypya.com",
	Phone:     "(021) 555-0123",
	WifiPass:  "paypyacafe2024",
	Instagram: "@paypya.cafe",
}
