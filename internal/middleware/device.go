package middleware

import (
	"crypto/subtle"
	"encoding/hex"
	"net/http"
)

// DeviceTokenHeader carries the shared-secret token on badge-reader requests.
const DeviceTokenHeader = "X-Device-Token"

// DeriveDeviceToken XORs the device secret against the server secret
// (cycled) and hex-encodes the result. The same derivation runs on the
// reader firmware, so neither secret ever travels on the wire.
func DeriveDeviceToken(deviceSecret, serverSecret string) string {
	out := make([]byte, len(deviceSecret))
	for i := 0; i < len(deviceSecret); i++ {
		out[i] = deviceSecret[i] ^ serverSecret[i%len(serverSecret)]
	}
	return hex.EncodeToString(out)
}

// DeviceToken validates the shared-secret header on ingestion routes.
// Missing token: 401. Wrong token: 403. Comparison is constant-time.
func DeviceToken(deviceSecret, serverSecret string) func(http.Handler) http.Handler {
	expected := []byte(DeriveDeviceToken(deviceSecret, serverSecret))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(DeviceTokenHeader)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "Device token missing")
				return
			}
			if subtle.ConstantTimeCompare([]byte(token), expected) != 1 {
				writeError(w, http.StatusForbidden, "Invalid device token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
