package tickets

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// qrPNGDataURI renders the code value as a 400px QR PNG, inlined so the email
// needs no image hosting.
func qrPNGDataURI(value string) (string, error) {
	png, err := qrcode.Encode(value, qrcode.Medium, 400)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
